package handlers

import (
	"errors"
	"net/http"

	"shiftpro_backend/internal/middleware"
	"shiftpro_backend/internal/services"
	"shiftpro_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ShiftHandler holds the shift service.
type ShiftHandler struct {
	shiftService services.ShiftService
}

// NewShiftHandler creates a new ShiftHandler.
func NewShiftHandler(ss services.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftService: ss}
}

// CreateShift handles the creation of a new shift.
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	var req services.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	createdBy := ""
	if session := middleware.SessionFromContext(c); session != nil {
		createdBy = session.User.ID
	}

	shift, err := h.shiftService.CreateShift(req, createdBy)
	if err != nil {
		utils.LogError(err, "CreateShift: Error from shiftService.CreateShift")
		switch {
		case errors.Is(err, services.ErrEmployeeNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Employee specified for shift not found.", err.Error()))
		case errors.Is(err, services.ErrShiftValidation),
			errors.Is(err, services.ErrShiftTimeFormat),
			errors.Is(err, services.ErrShiftDateFormat),
			errors.Is(err, services.ErrShiftPositionUnknown):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		case errors.Is(err, services.ErrSetupRequired):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "First-run setup is required.", err.Error()))
		default:
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create shift.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, shift)
}

// GetShifts lists the calendar.
func (h *ShiftHandler) GetShifts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.shiftService.GetShifts()})
}

// GetShiftByID fetches a single shift.
func (h *ShiftHandler) GetShiftByID(c *gin.Context) {
	shift, err := h.shiftService.GetShiftByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrShiftNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Shift not found.", err.Error()))
		} else {
			utils.LogError(err, "GetShiftByID: Error from shiftService.GetShiftByID")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch shift.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, shift)
}

// DeleteShift removes a shift by identifier.
func (h *ShiftHandler) DeleteShift(c *gin.Context) {
	if err := h.shiftService.DeleteShift(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrShiftNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Shift not found to delete.", err.Error()))
		} else {
			utils.LogError(err, "DeleteShift: Error from shiftService.DeleteShift")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete shift.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shift deleted"})
}

// DuplicateWeek clones every existing shift, appending the copies.
func (h *ShiftHandler) DuplicateWeek(c *gin.Context) {
	count, err := h.shiftService.DuplicateWeek()
	if err != nil {
		utils.LogError(err, "DuplicateWeek: Error from shiftService.DuplicateWeek")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to duplicate week.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"duplicated": count})
}
