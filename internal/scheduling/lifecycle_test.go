package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hospital-appointment-server/internal/models"
)

func TestCanTransitionFullGrid(t *testing.T) {
	statuses := []models.AppointmentStatus{
		models.StatusScheduled,
		models.StatusInProgress,
		models.StatusCompleted,
		models.StatusCancelled,
	}
	allowed := map[[2]models.AppointmentStatus]bool{
		{models.StatusScheduled, models.StatusInProgress}: true,
		{models.StatusScheduled, models.StatusCompleted}:  true,
		{models.StatusScheduled, models.StatusCancelled}:  true,
		{models.StatusInProgress, models.StatusCompleted}: true,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[[2]models.AppointmentStatus{from, to}]
			assert.Equal(t, want, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	for _, terminal := range []models.AppointmentStatus{models.StatusCompleted, models.StatusCancelled} {
		for _, to := range []models.AppointmentStatus{
			models.StatusScheduled,
			models.StatusInProgress,
			models.StatusCompleted,
			models.StatusCancelled,
		} {
			assert.False(t, CanTransition(terminal, to), "%s -> %s should be forbidden", terminal, to)
		}
	}
}

func TestTransitionAllowedForRoles(t *testing.T) {
	appt := &models.Appointment{PatientID: "patient-1", DoctorID: "doc-1"}
	doctorUser := "doc-user-1"

	doctor := Principal{ID: doctorUser, Role: models.RoleDoctor}
	otherDoctor := Principal{ID: "someone-else", Role: models.RoleDoctor}
	patient := Principal{ID: "patient-1", Role: models.RolePatient}
	otherPatient := Principal{ID: "patient-2", Role: models.RolePatient}
	admin := Principal{ID: "admin-1", Role: models.RoleAdmin}

	// Clinical statuses belong to the assigned doctor.
	assert.True(t, transitionAllowedFor(doctor, appt, doctorUser, models.StatusCompleted))
	assert.True(t, transitionAllowedFor(doctor, appt, doctorUser, models.StatusInProgress))
	assert.False(t, transitionAllowedFor(otherDoctor, appt, doctorUser, models.StatusCompleted))
	assert.False(t, transitionAllowedFor(patient, appt, doctorUser, models.StatusCompleted))
	assert.False(t, transitionAllowedFor(admin, appt, doctorUser, models.StatusCompleted))

	// Cancellation belongs to the owning patient or an admin.
	assert.True(t, transitionAllowedFor(patient, appt, doctorUser, models.StatusCancelled))
	assert.True(t, transitionAllowedFor(admin, appt, doctorUser, models.StatusCancelled))
	assert.False(t, transitionAllowedFor(otherPatient, appt, doctorUser, models.StatusCancelled))
	assert.False(t, transitionAllowedFor(doctor, appt, doctorUser, models.StatusCancelled))

	// A doctor record with no linked account fails closed.
	assert.False(t, transitionAllowedFor(Principal{ID: "", Role: models.RoleDoctor}, appt, "", models.StatusCompleted))
}
