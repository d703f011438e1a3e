package models

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "scheduled"
	StatusInProgress AppointmentStatus = "in-progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
)

// Appointment represents a booked slot. AppointmentDate is a calendar date
// ("YYYY-MM-DD") and AppointmentTime a slot value ("HH:MM", 24-hour clock);
// both are compared as strings, never as instants, so a booking made in one
// timezone never drifts into a neighbouring day.
type Appointment struct {
	BaseModel
	DoctorID        string            `gorm:"size:36;index:idx_doctor_day" json:"doctorId"`
	DepartmentID    string            `gorm:"size:36;index" json:"departmentId"`
	PatientID       string            `gorm:"size:36;index" json:"patientId"`
	AppointmentDate string            `gorm:"size:10;index:idx_doctor_day" json:"appointmentDate"`
	AppointmentTime string            `gorm:"size:5" json:"appointmentTime"`
	Status          AppointmentStatus `gorm:"size:20;default:'scheduled'" json:"status"`
	Reason          string            `gorm:"size:255" json:"reason,omitempty"`

	// Relations
	Doctor     Doctor     `gorm:"foreignKey:DoctorID" json:"-"`
	Department Department `gorm:"foreignKey:DepartmentID" json:"-"`
	Patient    User       `gorm:"foreignKey:PatientID" json:"-"`
}
