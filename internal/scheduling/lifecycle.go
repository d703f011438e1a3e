package scheduling

import (
	"hospital-appointment-server/internal/models"
)

// allowedTransitions is the appointment state machine. Completed and
// cancelled are terminal.
var allowedTransitions = map[models.AppointmentStatus][]models.AppointmentStatus{
	models.StatusScheduled: {
		models.StatusInProgress,
		models.StatusCompleted,
		models.StatusCancelled,
	},
	models.StatusInProgress: {
		models.StatusCompleted,
	},
}

// CanTransition reports whether the state machine allows moving from one
// status to another, independent of who is asking.
func CanTransition(from, to models.AppointmentStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// transitionAllowedFor checks role and ownership for a transition. Doctors
// drive the clinical statuses on their own appointments; cancellation
// belongs to the owning patient or an admin.
func transitionAllowedFor(p Principal, appt *models.Appointment, doctorUserID string, to models.AppointmentStatus) bool {
	switch to {
	case models.StatusInProgress, models.StatusCompleted:
		return p.Role == models.RoleDoctor && doctorUserID != "" && p.ID == doctorUserID
	case models.StatusCancelled:
		if p.Role == models.RoleAdmin {
			return true
		}
		return p.Role == models.RolePatient && p.ID == appt.PatientID
	default:
		return false
	}
}
