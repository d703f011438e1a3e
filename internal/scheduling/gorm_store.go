package scheduling

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hospital-appointment-server/internal/models"
)

// GormStore implements Store on a gorm-managed MySQL database.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store backed by the given database handle.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// CreateScheduled re-checks occupancy and inserts inside one transaction.
// The locking read makes concurrent transactions for the same triple
// serialize at the database, so the invariant holds across processes too.
func (s *GormStore) CreateScheduled(ctx context.Context, appt *models.Appointment) error {
	appt.Status = models.StatusScheduled
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("doctor_id = ? AND appointment_date = ? AND appointment_time = ? AND status IN ?",
				appt.DoctorID, appt.AppointmentDate, appt.AppointmentTime, OccupyingStatuses).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrSlotTaken
		}
		return tx.Create(appt).Error
	})
}

func (s *GormStore) OccupiedTimes(ctx context.Context, doctorID, date string) ([]string, error) {
	var times []string
	err := s.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("doctor_id = ? AND appointment_date = ? AND status IN ?", doctorID, date, OccupyingStatuses).
		Order("appointment_time asc").
		Pluck("appointment_time", &times).Error
	return times, err
}

func (s *GormStore) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	var appt models.Appointment
	err := s.db.WithContext(ctx).First(&appt, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &appt, nil
}

func (s *GormStore) ListAppointments(ctx context.Context, f AppointmentFilter) ([]models.Appointment, error) {
	q := s.db.WithContext(ctx).Model(&models.Appointment{}).
		Order("appointment_date asc, appointment_time asc")
	if f.DoctorID != "" {
		q = q.Where("doctor_id = ?", f.DoctorID)
	}
	if f.PatientID != "" {
		q = q.Where("patient_id = ?", f.PatientID)
	}
	if f.Date != "" {
		q = q.Where("appointment_date = ?", f.Date)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var appts []models.Appointment
	err := q.Find(&appts).Error
	return appts, err
}

func (s *GormStore) TransitionStatus(ctx context.Context, id string, from, to models.AppointmentStatus) error {
	res := s.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// The row moved out of `from` between the caller's read and this
		// write (or never existed; the caller has already resolved it).
		return ErrInvalidTransition
	}
	return nil
}

func (s *GormStore) ListDepartments(ctx context.Context) ([]models.Department, error) {
	var departments []models.Department
	err := s.db.WithContext(ctx).Order("name asc").Find(&departments).Error
	return departments, err
}

func (s *GormStore) GetDepartment(ctx context.Context, id string) (*models.Department, error) {
	var dept models.Department
	err := s.db.WithContext(ctx).First(&dept, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &dept, nil
}

func (s *GormStore) ListDoctorsByDepartment(ctx context.Context, departmentID string) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := s.db.WithContext(ctx).
		Where("department_id = ?", departmentID).
		Order("name asc").
		Find(&doctors).Error
	return doctors, err
}

func (s *GormStore) GetDoctor(ctx context.Context, id string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := s.db.WithContext(ctx).First(&doctor, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

func (s *GormStore) GetDoctorByUserID(ctx context.Context, userID string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := s.db.WithContext(ctx).First(&doctor, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doctor, nil
}
