package scheduling

import (
	"context"
	"errors"

	"hospital-appointment-server/internal/models"
)

// Principal is the authenticated caller, built from the bearer credential
// issued by the identity service and passed explicitly into every
// operation. There is no ambient auth state.
type Principal struct {
	ID   string
	Role models.Role
}

// Service is the scheduling boundary exposed to the HTTP layer: directory
// reads, slot queries, booking and lifecycle transitions, with
// authorization evaluated once per call.
type Service struct {
	store        Store
	cfg          SlotConfig
	availability *Availability
	coordinator  *Coordinator
}

// NewService wires the scheduling core over a store.
func NewService(store Store, cfg SlotConfig) *Service {
	return &Service{
		store:        store,
		cfg:          cfg,
		availability: NewAvailability(store, cfg),
		coordinator:  NewCoordinator(store, cfg),
	}
}

// ListDepartments returns all departments. Public.
func (s *Service) ListDepartments(ctx context.Context) ([]models.Department, error) {
	return s.store.ListDepartments(ctx)
}

// ListDoctorsByDepartment returns the doctors of one department. Public.
func (s *Service) ListDoctorsByDepartment(ctx context.Context, departmentID string) ([]models.Doctor, error) {
	if departmentID == "" {
		return nil, invalidField("departmentId", "required")
	}
	if _, err := s.store.GetDepartment(ctx, departmentID); err != nil {
		return nil, err
	}
	return s.store.ListDoctorsByDepartment(ctx, departmentID)
}

// DaySlots returns the slot grid for a doctor's day with availability.
func (s *Service) DaySlots(ctx context.Context, doctorID, date string) ([]DaySlot, error) {
	return s.availability.DaySlots(ctx, doctorID, date)
}

// CheckSlot is the advisory availability read used by the booking form
// while the user picks a time. It holds no lock and guarantees nothing
// about a later booking.
func (s *Service) CheckSlot(ctx context.Context, doctorID, date, slotTime string) (bool, error) {
	return s.availability.IsAvailable(ctx, doctorID, date, slotTime)
}

// CreateAppointment books a slot for a patient. Patients book only for
// themselves; admins may book on a patient's behalf.
func (s *Service) CreateAppointment(ctx context.Context, p Principal, req BookingRequest) (*models.Appointment, error) {
	switch p.Role {
	case models.RolePatient:
		if req.PatientID != "" && req.PatientID != p.ID {
			return nil, ErrForbidden
		}
		req.PatientID = p.ID
	case models.RoleAdmin:
		// patientID comes from the request; validated by the coordinator.
	default:
		return nil, ErrForbidden
	}
	return s.coordinator.Book(ctx, req)
}

// ListAppointments returns appointments visible to the caller. The role
// decides the filter predicate: patients see their own, doctors their
// assigned ones, admins everything.
func (s *Service) ListAppointments(ctx context.Context, p Principal, f AppointmentFilter) ([]models.Appointment, error) {
	switch p.Role {
	case models.RolePatient:
		f.PatientID = p.ID
	case models.RoleDoctor:
		doctor, err := s.store.GetDoctorByUserID(ctx, p.ID)
		if errors.Is(err, ErrNotFound) {
			// A doctor account without a directory record has no
			// assigned appointments.
			return []models.Appointment{}, nil
		}
		if err != nil {
			return nil, err
		}
		f.DoctorID = doctor.ID
	case models.RoleAdmin:
		// unrestricted
	default:
		return nil, ErrForbidden
	}
	return s.store.ListAppointments(ctx, f)
}

// GetAppointment returns one appointment if the caller is involved in it
// or is an admin.
func (s *Service) GetAppointment(ctx context.Context, p Principal, id string) (*models.Appointment, error) {
	appt, err := s.store.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Role == models.RoleAdmin {
		return appt, nil
	}
	if p.Role == models.RolePatient && p.ID == appt.PatientID {
		return appt, nil
	}
	if p.Role == models.RoleDoctor {
		if owner := s.doctorUserID(ctx, appt.DoctorID); owner != "" && p.ID == owner {
			return appt, nil
		}
	}
	return nil, ErrForbidden
}

// UpdateStatus applies a lifecycle transition: the state machine decides
// whether the move is legal, then role and ownership decide whether this
// caller may perform it. The store write is a compare-and-set so a
// concurrent transition cannot be overwritten.
func (s *Service) UpdateStatus(ctx context.Context, p Principal, id string, newStatus models.AppointmentStatus) (*models.Appointment, error) {
	switch newStatus {
	case models.StatusScheduled, models.StatusInProgress, models.StatusCompleted, models.StatusCancelled:
	default:
		return nil, invalidField("status", "unknown status value")
	}

	appt, err := s.store.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(appt.Status, newStatus) {
		return nil, ErrInvalidTransition
	}
	if !transitionAllowedFor(p, appt, s.doctorUserID(ctx, appt.DoctorID), newStatus) {
		return nil, ErrForbidden
	}

	if err := s.store.TransitionStatus(ctx, id, appt.Status, newStatus); err != nil {
		return nil, err
	}
	appt.Status = newStatus
	return appt, nil
}

// CancelAppointment cancels a scheduled appointment, freeing its slot.
// Only the owning patient or an admin may cancel.
func (s *Service) CancelAppointment(ctx context.Context, p Principal, id string) (*models.Appointment, error) {
	return s.UpdateStatus(ctx, p, id, models.StatusCancelled)
}

// doctorUserID resolves the account behind a doctor directory record.
// Empty when the record is missing or unlinked, which makes every
// ownership check against it fail closed.
func (s *Service) doctorUserID(ctx context.Context, doctorID string) string {
	doctor, err := s.store.GetDoctor(ctx, doctorID)
	if err != nil {
		return ""
	}
	return doctor.UserID
}
