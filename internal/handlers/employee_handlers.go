package handlers

import (
	"errors"
	"net/http"

	"shiftpro_backend/internal/middleware"
	"shiftpro_backend/internal/services"
	"shiftpro_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler holds the employee service.
type EmployeeHandler struct {
	employeeService services.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(es services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: es}
}

func respondEmployeeError(c *gin.Context, err error, action string) {
	utils.LogError(err, action+": Error from employeeService")
	switch {
	case errors.Is(err, services.ErrEmployeeNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Employee not found.", err.Error()))
	case errors.Is(err, services.ErrEmployeeEmailExists):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "An employee with this email already exists.", err.Error()))
	case errors.Is(err, services.ErrEmployeeValidation),
		errors.Is(err, services.ErrEmployeeRateInvalid),
		errors.Is(err, services.ErrEmployeeContractType):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Employee operation failed.", "Internal error"))
	}
}

// CreateEmployee handles the creation of a new employee.
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req services.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	createdBy := ""
	if session := middleware.SessionFromContext(c); session != nil {
		createdBy = session.User.ID
	}

	employee, err := h.employeeService.CreateEmployee(req, createdBy)
	if err != nil {
		respondEmployeeError(c, err, "CreateEmployee")
		return
	}
	c.JSON(http.StatusCreated, employee)
}

// GetEmployees lists the roster.
func (h *EmployeeHandler) GetEmployees(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.employeeService.GetEmployees()})
}

// GetEmployeeByID fetches a single employee.
func (h *EmployeeHandler) GetEmployeeByID(c *gin.Context) {
	employee, err := h.employeeService.GetEmployeeByID(c.Param("id"))
	if err != nil {
		respondEmployeeError(c, err, "GetEmployeeByID")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// UpdateEmployee handles updating an employee.
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var req services.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Param("id"), req)
	if err != nil {
		respondEmployeeError(c, err, "UpdateEmployee")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee removes an employee and cascades its shifts.
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	removedShifts, err := h.employeeService.DeleteEmployee(c.Param("id"))
	if err != nil {
		respondEmployeeError(c, err, "DeleteEmployee")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted", "removed_shifts": removedShifts})
}
