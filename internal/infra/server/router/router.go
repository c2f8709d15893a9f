// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/condo-control/backend/internal/integration/entrypoint/controller"
	"github.com/condo-control/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	financeController     *controller.FinanceController
	delinquencyController *controller.DelinquencyController
	maintenanceController *controller.MaintenanceController
	indicatorsController  *controller.IndicatorsController
	rateLimiter           *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	financeController *controller.FinanceController,
	delinquencyController *controller.DelinquencyController,
	maintenanceController *controller.MaintenanceController,
	indicatorsController *controller.IndicatorsController,
	rateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		financeController:     financeController,
		delinquencyController: delinquencyController,
		maintenanceController: maintenanceController,
		indicatorsController:  indicatorsController,
		rateLimiter:           rateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Every route except health
// requires a bearer token scoped to a condominium.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	if r.rateLimiter != nil {
		v1.Use(r.rateLimiter.Middleware())
	}

	if r.financeController != nil && r.authMiddleware != nil {
		finance := v1.Group("/finance")
		finance.Use(r.authMiddleware.Authenticate())
		{
			finance.GET("/totals", r.financeController.GetTotals)
			finance.GET("/projection/:date", r.financeController.GetProjection)
			finance.GET("/projection/:date/registers", r.financeController.GetProjectionRegisters)
			finance.GET("/records", r.financeController.ListRecords)
			finance.POST("/records", r.financeController.CreateRecord)
			finance.PUT("/records/:recordId", r.financeController.UpdateRecord)
			finance.DELETE("/records/:recordId", r.financeController.DeleteRecord)
			finance.GET("/categories", r.financeController.ListCategories)
			finance.PUT("/overrides/income", r.financeController.OverrideIncome)
			finance.PUT("/overrides/expenses", r.financeController.OverrideExpenses)
		}
	}

	if r.delinquencyController != nil && r.authMiddleware != nil {
		delinquency := v1.Group("/delinquency")
		delinquency.Use(r.authMiddleware.Authenticate())
		{
			delinquency.GET("/register/:date", r.delinquencyController.GetRegister)
			delinquency.GET("/resume", r.delinquencyController.GetResume)
			delinquency.POST("", r.delinquencyController.Create)
			delinquency.PUT("/:delinquencyId", r.delinquencyController.Update)
			delinquency.DELETE("/:delinquencyId", r.delinquencyController.Delete)
		}
	}

	if r.maintenanceController != nil && r.authMiddleware != nil {
		maintenance := v1.Group("/maintenance")
		maintenance.Use(r.authMiddleware.Authenticate())
		{
			maintenance.GET("/:date", r.maintenanceController.List)
			maintenance.GET("/detail/:maintenanceId", r.maintenanceController.Get)
			maintenance.GET("/cards/:date", r.maintenanceController.GetCards)
			maintenance.POST("", r.maintenanceController.Create)
			maintenance.PUT("/:maintenanceId", r.maintenanceController.Update)
			maintenance.DELETE("/:maintenanceId", r.maintenanceController.Delete)
		}
	}

	if r.indicatorsController != nil && r.authMiddleware != nil {
		indicators := v1.Group("/indicators")
		indicators.Use(r.authMiddleware.Authenticate())
		{
			indicators.GET("/charts/revenue-by-category", r.indicatorsController.RevenueByCategory)
			indicators.GET("/charts/expense-by-category", r.indicatorsController.ExpenseByCategory)
			indicators.GET("/charts/revenue-fixed-variable", r.indicatorsController.RevenueFixedVariable)
			indicators.GET("/charts/expense-fixed-variable", r.indicatorsController.ExpenseFixedVariable)
			indicators.GET("/charts/monthly-balance/:year", r.indicatorsController.MonthlyBalance)
			indicators.GET("/resume/:date", r.indicatorsController.Resume)
		}
	}
}
