package router

import (
	"shiftpro_backend/internal/handlers"
	"shiftpro_backend/internal/middleware"
	"shiftpro_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// SetupPublicAuthRoutes sets up the routes reachable without a session.
func SetupPublicAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.GET("/setup-status", authHandler.SetupStatus)
	group.POST("/setup", authHandler.Setup)
	group.POST("/login", authHandler.Login)
	group.POST("/session", authHandler.RestoreSession)
}

// SetupAuthenticatedAuthRoutes sets up the auth routes that require a session.
func SetupAuthenticatedAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/logout", authHandler.Logout)
	group.GET("/me", authHandler.GetCurrentUser)
}

// SetupUserRoutes sets up the user account routes. Admin only.
func SetupUserRoutes(authenticatedGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	userRoutes := authenticatedGroup.Group("/users")
	userRoutes.Use(middleware.PermissionMiddleware(models.PermissionAll))
	{
		userRoutes.POST("", authHandler.RegisterUser)
		userRoutes.GET("", authHandler.GetUsers)
	}
}

// SetupCompanyRoutes sets up the company profile and settings routes.
func SetupCompanyRoutes(authenticatedGroup *gin.RouterGroup, companyHandler *handlers.CompanyHandler) {
	authenticatedGroup.GET("/company", companyHandler.GetCompany)
	authenticatedGroup.PUT("/company/settings",
		middleware.PermissionMiddleware(models.PermissionAll),
		companyHandler.UpdateSettings)
}

// SetupEmployeeRoutes sets up the roster routes. Reads are open to any
// session; writes require the manage permission.
func SetupEmployeeRoutes(authenticatedGroup *gin.RouterGroup, employeeHandler *handlers.EmployeeHandler) {
	authenticatedGroup.GET("/employees", employeeHandler.GetEmployees)
	authenticatedGroup.GET("/employees/:id", employeeHandler.GetEmployeeByID)

	employeeWriteRoutes := authenticatedGroup.Group("/employees")
	employeeWriteRoutes.Use(middleware.PermissionMiddleware(models.PermissionManageEmployees))
	{
		employeeWriteRoutes.POST("", employeeHandler.CreateEmployee)
		employeeWriteRoutes.PUT("/:id", employeeHandler.UpdateEmployee)
		employeeWriteRoutes.DELETE("/:id", employeeHandler.DeleteEmployee)
	}
}

// SetupShiftRoutes sets up the calendar routes.
func SetupShiftRoutes(authenticatedGroup *gin.RouterGroup, shiftHandler *handlers.ShiftHandler) {
	shiftReadRoutes := authenticatedGroup.Group("/shifts")
	shiftReadRoutes.Use(middleware.PermissionMiddleware(models.PermissionViewShifts, models.PermissionManageShifts))
	{
		shiftReadRoutes.GET("", shiftHandler.GetShifts)
		shiftReadRoutes.GET("/:id", shiftHandler.GetShiftByID)
	}

	shiftWriteRoutes := authenticatedGroup.Group("/shifts")
	shiftWriteRoutes.Use(middleware.PermissionMiddleware(models.PermissionManageShifts))
	{
		shiftWriteRoutes.POST("", shiftHandler.CreateShift)
		shiftWriteRoutes.DELETE("/:id", shiftHandler.DeleteShift)
		shiftWriteRoutes.POST("/duplicate-week", shiftHandler.DuplicateWeek)
	}
}

// SetupReportRoutes sets up the analytics routes.
func SetupReportRoutes(authenticatedGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reportRoutes := authenticatedGroup.Group("/reports")
	reportRoutes.Use(middleware.PermissionMiddleware(models.PermissionViewAnalytics))
	{
		reportRoutes.GET("/weekly", reportHandler.GetWeeklySummary)
	}
}

// SetupExportRoutes sets up the backup routes. Exports need the export
// permission; restoring a backup is admin only.
func SetupExportRoutes(authenticatedGroup *gin.RouterGroup, exportHandler *handlers.ExportHandler) {
	exportRoutes := authenticatedGroup.Group("/export")
	exportRoutes.Use(middleware.PermissionMiddleware(models.PermissionExportData))
	{
		exportRoutes.GET("/json", exportHandler.ExportJSON)
		exportRoutes.GET("/excel", exportHandler.ExportExcel)
	}

	authenticatedGroup.POST("/import",
		middleware.PermissionMiddleware(models.PermissionAll),
		exportHandler.Import)
}
