package router

import (
	"shiftpro_backend/internal/handlers"
	"shiftpro_backend/internal/middleware"
	"shiftpro_backend/internal/repositories"
	"shiftpro_backend/internal/services"
	"shiftpro_backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, store *storage.Adapter) {
	// Initialize Repositories
	authRepo := repositories.NewAuthRepository(store)
	companyRepo := repositories.NewCompanyRepository(store)
	employeeRepo := repositories.NewEmployeeRepository(store)
	shiftRepo := repositories.NewShiftRepository(store)

	// Initialize Services
	authService := services.NewAuthService(authRepo, companyRepo, employeeRepo, shiftRepo)
	companyService := services.NewCompanyService(companyRepo)
	employeeService := services.NewEmployeeService(employeeRepo, shiftRepo, companyRepo)
	shiftService := services.NewShiftService(shiftRepo, employeeRepo, companyRepo)
	analyticsService := services.NewAnalyticsService(employeeRepo, shiftRepo, companyRepo)
	exportService := services.NewExportService(companyRepo, employeeRepo, shiftRepo)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	shiftHandler := handlers.NewShiftHandler(shiftService)
	reportHandler := handlers.NewReportHandler(analyticsService)
	exportHandler := handlers.NewExportHandler(exportService)

	apiV1 := engine.Group("/api/v1")

	// Setup public authentication routes
	SetupPublicAuthRoutes(apiV1.Group("/auth"), authHandler)

	// Setup authenticated routes
	authenticated := apiV1.Group("")
	authenticated.Use(middleware.SessionMiddleware(authService))
	{
		SetupAuthenticatedAuthRoutes(authenticated.Group("/auth"), authHandler)

		SetupUserRoutes(authenticated, authHandler)
		SetupCompanyRoutes(authenticated, companyHandler)
		SetupEmployeeRoutes(authenticated, employeeHandler)
		SetupShiftRoutes(authenticated, shiftHandler)
		SetupReportRoutes(authenticated, reportHandler)
		SetupExportRoutes(authenticated, exportHandler)
	}
}
