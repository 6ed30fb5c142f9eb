package handlers

import (
	"errors"
	"net/http"

	"shiftpro_backend/internal/services"
	"shiftpro_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CompanyHandler holds the company service.
type CompanyHandler struct {
	companyService services.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(cs services.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: cs}
}

// GetCompany returns the tenant profile.
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	company, err := h.companyService.GetCompany()
	if err != nil {
		if errors.Is(err, services.ErrCompanyNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Company not configured.", err.Error()))
		} else {
			utils.LogError(err, "GetCompany: Error from companyService.GetCompany")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch company.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, company)
}

// UpdateSettings applies partial settings edits.
func (h *CompanyHandler) UpdateSettings(c *gin.Context) {
	var req services.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	company, err := h.companyService.UpdateSettings(req)
	if err != nil {
		utils.LogError(err, "UpdateSettings: Error from companyService.UpdateSettings")
		if errors.Is(err, services.ErrCompanyNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Company not configured.", err.Error()))
		} else if errors.Is(err, services.ErrSettingsValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update settings.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, company)
}
