package handlers

import (
	"errors"
	"net/http"

	"shiftpro_backend/internal/services"
	"shiftpro_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler holds the analytics service.
type ReportHandler struct {
	analyticsService services.AnalyticsService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(as services.AnalyticsService) *ReportHandler {
	return &ReportHandler{analyticsService: as}
}

// GetWeeklySummary returns the aggregates for the current work week.
func (h *ReportHandler) GetWeeklySummary(c *gin.Context) {
	summary, err := h.analyticsService.WeeklySummary()
	if err != nil {
		if errors.Is(err, services.ErrCompanyNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "First-run setup is required before reports are available.", err.Error()))
		} else {
			utils.LogError(err, "GetWeeklySummary: Error from analyticsService.WeeklySummary")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build weekly summary.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, summary)
}
