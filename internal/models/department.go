package models

// Department represents a clinical department patients book into.
type Department struct {
	BaseModel
	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string `gorm:"size:255" json:"description,omitempty"`

	// Relations
	Doctors []Doctor `gorm:"foreignKey:DepartmentID" json:"doctors,omitempty"`
}

// Doctor is a directory record for a bookable clinician. UserID links the
// record to the account that performs status transitions; it may be empty
// for doctors listed before their account exists.
type Doctor struct {
	BaseModel
	DepartmentID   string `gorm:"size:36;index;not null" json:"departmentId"`
	UserID         string `gorm:"size:36;index" json:"userId,omitempty"`
	Name           string `gorm:"size:150;not null" json:"name"`
	Specialization string `gorm:"size:150" json:"specialization,omitempty"`

	// Relations
	Department Department `gorm:"foreignKey:DepartmentID" json:"-"`
}
