package scheduling

import (
	"context"

	"hospital-appointment-server/internal/models"
)

// AppointmentFilter narrows a ListAppointments read. Zero-value fields are
// ignored. Authorization is applied by the service before the filter
// reaches the store.
type AppointmentFilter struct {
	DoctorID  string
	PatientID string
	Date      string
	Status    models.AppointmentStatus
}

// Store is the persistence boundary for the scheduling core. All DB
// interactions needed by the availability index, the booking coordinator
// and the service go through it, which keeps the concurrency-sensitive
// pieces testable without a database.
type Store interface {
	// CreateScheduled performs the atomic check-and-reserve: within one
	// transaction it re-checks occupancy for the appointment's
	// (doctor, date, time) triple against current persisted state and
	// inserts the row with status=scheduled, or reports ErrSlotTaken
	// with nothing written.
	CreateScheduled(ctx context.Context, appt *models.Appointment) error

	// OccupiedTimes returns the appointment times occupied for a doctor
	// on a calendar date, ascending.
	OccupiedTimes(ctx context.Context, doctorID, date string) ([]string, error)

	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
	ListAppointments(ctx context.Context, f AppointmentFilter) ([]models.Appointment, error)

	// TransitionStatus is a compare-and-set on (id, from). A concurrent
	// status change surfaces as ErrInvalidTransition, never a lost update.
	TransitionStatus(ctx context.Context, id string, from, to models.AppointmentStatus) error

	ListDepartments(ctx context.Context) ([]models.Department, error)
	GetDepartment(ctx context.Context, id string) (*models.Department, error)
	ListDoctorsByDepartment(ctx context.Context, departmentID string) ([]models.Doctor, error)
	GetDoctor(ctx context.Context, id string) (*models.Doctor, error)
	GetDoctorByUserID(ctx context.Context, userID string) (*models.Doctor, error)
}
