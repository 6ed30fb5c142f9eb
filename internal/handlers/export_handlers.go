package handlers

import (
	"errors"
	"io"
	"net/http"

	"shiftpro_backend/internal/middleware"
	"shiftpro_backend/internal/services"
	"shiftpro_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ExportHandler holds the export service.
type ExportHandler struct {
	exportService services.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(es services.ExportService) *ExportHandler {
	return &ExportHandler{exportService: es}
}

func exportedBy(c *gin.Context) string {
	if session := middleware.SessionFromContext(c); session != nil {
		return session.User.Name
	}
	return ""
}

// ExportJSON streams the backup bundle as a JSON download.
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	payload, filename, err := h.exportService.ExportJSON(exportedBy(c))
	if err != nil {
		h.respondExportError(c, err, "ExportJSON")
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Data(http.StatusOK, "application/json", payload)
}

// ExportExcel streams the backup bundle as an xlsx download.
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	payload, filename, err := h.exportService.ExportExcel(exportedBy(c))
	if err != nil {
		h.respondExportError(c, err, "ExportExcel")
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", payload)
}

// Import restores the roster and calendar from an uploaded backup bundle.
func (h *ExportHandler) Import(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Could not read import payload.", err.Error()))
		return
	}

	result, err := h.exportService.Import(data)
	if err != nil {
		utils.LogError(err, "Import: Error from exportService.Import")
		switch {
		case errors.Is(err, services.ErrImportInvalid):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Import document is not a valid backup.", err.Error()))
		case errors.Is(err, services.ErrImportVersion):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Backup format version is not supported.", err.Error()))
		default:
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to import backup.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ExportHandler) respondExportError(c *gin.Context, err error, operation string) {
	if errors.Is(err, services.ErrCompanyNotFound) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "First-run setup is required before exports are available.", err.Error()))
		return
	}
	utils.LogError(err, operation+": Error from exportService")
	utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build export.", "Internal error"))
}
