package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hospital-appointment-server/internal/middleware"
	"hospital-appointment-server/internal/models"
	"hospital-appointment-server/internal/scheduling"
	"hospital-appointment-server/internal/utils"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	Service *scheduling.Service
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(service *scheduling.Service) *AppointmentHandler {
	return &AppointmentHandler{Service: service}
}

// GetDaySlots returns the full slot grid for a doctor's day with
// per-slot availability.
func (h *AppointmentHandler) GetDaySlots(c *gin.Context) {
	doctorID := c.Query("doctor")
	date := c.Query("appointmentDate")

	slots, err := h.Service.DaySlots(c.Request.Context(), doctorID, date)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	utils.Success(c, "Slots fetched successfully", slots)
}

// CheckSlot is the advisory availability probe used while the booking
// form is being filled in. The response is a hint; the booking itself is
// still decided atomically on submit.
func (h *AppointmentHandler) CheckSlot(c *gin.Context) {
	doctorID := c.Query("doctor")
	date := c.Query("appointmentDate")
	slotTime := c.Query("appointmentTime")

	available, err := h.Service.CheckSlot(c.Request.Context(), doctorID, date, slotTime)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	utils.Success(c, "Slot availability checked", gin.H{"available": available})
}

// CreateAppointmentRequest represents the request body for creating an appointment.
type CreateAppointmentRequest struct {
	DoctorID     string `json:"doctor" binding:"required"`
	DepartmentID string `json:"department" binding:"required"`
	PatientID    string `json:"patientId"` // Admins book on behalf of a patient; patients leave it empty
	Date         string `json:"appointmentDate" binding:"required"`
	Time         string `json:"appointmentTime" binding:"required"`
	Reason       string `json:"reason"`
}

// CreateAppointment books a slot. A conflict comes back as 409; the
// client is expected to re-query availability and pick another slot.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	appt, err := h.Service.CreateAppointment(c.Request.Context(), principal, scheduling.BookingRequest{
		DoctorID:     req.DoctorID,
		DepartmentID: req.DepartmentID,
		PatientID:    req.PatientID,
		Date:         req.Date,
		Time:         req.Time,
		Reason:       req.Reason,
	})
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	utils.Created(c, "Appointment booked successfully", appt)
}

// GetAppointments lists the appointments visible to the caller: patients
// their own, doctors their assigned ones, admins all.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	filter := scheduling.AppointmentFilter{
		Date:   c.Query("appointmentDate"),
		Status: models.AppointmentStatus(c.Query("status")),
	}
	appts, err := h.Service.ListAppointments(c.Request.Context(), principal, filter)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	utils.Success(c, "Appointments fetched successfully", appts)
}

// GetAppointmentByID returns one appointment for an involved party or an
// admin.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	appt, err := h.Service.GetAppointment(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	utils.Success(c, "Appointment fetched successfully", appt)
}

// UpdateAppointmentStatusRequest represents the request body for updating an appointment's status.
type UpdateAppointmentStatusRequest struct {
	Status models.AppointmentStatus `json:"status" binding:"required,oneof=scheduled in-progress completed cancelled"`
}

// UpdateAppointmentStatus applies a lifecycle transition. Doctors drive
// in-progress/completed on their own appointments; cancellation belongs
// to the owning patient or an admin.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	var req UpdateAppointmentStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	appt, err := h.Service.UpdateStatus(c.Request.Context(), principal, c.Param("id"), req.Status)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	utils.Success(c, "Appointment status updated successfully", appt)
}

// CancelAppointment cancels an appointment, freeing its slot.
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	appt, err := h.Service.CancelAppointment(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	utils.Success(c, "Appointment cancelled successfully", appt)
}

// respondSchedulingError maps core scheduling errors to the response
// envelope. Each kind stays distinct so clients can act on it; a slot
// conflict in particular must never degrade into a generic failure.
func respondSchedulingError(c *gin.Context, err error) {
	var vErr *scheduling.ValidationError
	switch {
	case errors.As(err, &vErr):
		utils.BadRequest(c, vErr.Error())
	case errors.Is(err, scheduling.ErrSlotTaken):
		utils.Conflict(c, "Selected time slot is not available. Please choose another time.")
	case errors.Is(err, scheduling.ErrInvalidTransition):
		utils.Conflict(c, "Requested status change is not allowed from the appointment's current status.")
	case errors.Is(err, scheduling.ErrForbidden):
		utils.Forbidden(c, "You are not authorized to perform this operation.")
	case errors.Is(err, scheduling.ErrNotFound):
		utils.NotFound(c, "Requested resource not found")
	default:
		utils.InternalServerError(c, "Unexpected error: "+err.Error())
	}
}
