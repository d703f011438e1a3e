package handlers

import (
	"github.com/gin-gonic/gin"

	"hospital-appointment-server/internal/scheduling"
	"hospital-appointment-server/internal/utils"
)

// DirectoryHandler serves the public department and doctor listings the
// booking form is populated from.
type DirectoryHandler struct {
	Service *scheduling.Service
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(service *scheduling.Service) *DirectoryHandler {
	return &DirectoryHandler{Service: service}
}

// GetDepartments lists all departments.
func (h *DirectoryHandler) GetDepartments(c *gin.Context) {
	departments, err := h.Service.ListDepartments(c.Request.Context())
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	utils.Success(c, "Departments fetched successfully", departments)
}

// GetDoctorsByDepartment lists the doctors of one department.
func (h *DirectoryHandler) GetDoctorsByDepartment(c *gin.Context) {
	doctors, err := h.Service.ListDoctorsByDepartment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	utils.Success(c, "Doctors fetched successfully", doctors)
}
