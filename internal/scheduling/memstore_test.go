package scheduling

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"hospital-appointment-server/internal/models"
)

// memStore is an in-memory Store used by the package tests. Its
// CreateScheduled mirrors the transactional semantics of the real store:
// check and insert under one lock.
type memStore struct {
	mu           sync.Mutex
	appointments map[string]models.Appointment
	departments  []models.Department
	doctors      []models.Doctor
}

func newMemStore() *memStore {
	return &memStore{appointments: make(map[string]models.Appointment)}
}

func (m *memStore) CreateScheduled(ctx context.Context, appt *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.appointments {
		if existing.DoctorID == appt.DoctorID &&
			existing.AppointmentDate == appt.AppointmentDate &&
			existing.AppointmentTime == appt.AppointmentTime &&
			occupying(existing.Status) {
			return ErrSlotTaken
		}
	}
	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	appt.Status = models.StatusScheduled
	m.appointments[appt.ID] = *appt
	return nil
}

func (m *memStore) OccupiedTimes(ctx context.Context, doctorID, date string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var times []string
	for _, appt := range m.appointments {
		if appt.DoctorID == doctorID && appt.AppointmentDate == date && occupying(appt.Status) {
			times = append(times, appt.AppointmentTime)
		}
	}
	sort.Strings(times)
	return times, nil
}

func (m *memStore) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	appt, ok := m.appointments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &appt, nil
}

func (m *memStore) ListAppointments(ctx context.Context, f AppointmentFilter) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	appts := []models.Appointment{}
	for _, appt := range m.appointments {
		if f.DoctorID != "" && appt.DoctorID != f.DoctorID {
			continue
		}
		if f.PatientID != "" && appt.PatientID != f.PatientID {
			continue
		}
		if f.Date != "" && appt.AppointmentDate != f.Date {
			continue
		}
		if f.Status != "" && appt.Status != f.Status {
			continue
		}
		appts = append(appts, appt)
	}
	sort.Slice(appts, func(i, j int) bool {
		if appts[i].AppointmentDate != appts[j].AppointmentDate {
			return appts[i].AppointmentDate < appts[j].AppointmentDate
		}
		return appts[i].AppointmentTime < appts[j].AppointmentTime
	})
	return appts, nil
}

func (m *memStore) TransitionStatus(ctx context.Context, id string, from, to models.AppointmentStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	appt, ok := m.appointments[id]
	if !ok || appt.Status != from {
		return ErrInvalidTransition
	}
	appt.Status = to
	m.appointments[id] = appt
	return nil
}

func (m *memStore) ListDepartments(ctx context.Context) ([]models.Department, error) {
	return m.departments, nil
}

func (m *memStore) GetDepartment(ctx context.Context, id string) (*models.Department, error) {
	for i := range m.departments {
		if m.departments[i].ID == id {
			return &m.departments[i], nil
		}
	}
	return nil, ErrNotFound
}

func (m *memStore) ListDoctorsByDepartment(ctx context.Context, departmentID string) ([]models.Doctor, error) {
	doctors := []models.Doctor{}
	for _, d := range m.doctors {
		if d.DepartmentID == departmentID {
			doctors = append(doctors, d)
		}
	}
	return doctors, nil
}

func (m *memStore) GetDoctor(ctx context.Context, id string) (*models.Doctor, error) {
	for i := range m.doctors {
		if m.doctors[i].ID == id {
			return &m.doctors[i], nil
		}
	}
	return nil, ErrNotFound
}

func (m *memStore) GetDoctorByUserID(ctx context.Context, userID string) (*models.Doctor, error) {
	if userID == "" {
		return nil, ErrNotFound
	}
	for i := range m.doctors {
		if m.doctors[i].UserID == userID {
			return &m.doctors[i], nil
		}
	}
	return nil, ErrNotFound
}

func occupying(status models.AppointmentStatus) bool {
	for _, s := range OccupyingStatuses {
		if s == status {
			return true
		}
	}
	return false
}
