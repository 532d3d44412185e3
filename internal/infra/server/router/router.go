// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/opsboard/backend/internal/integration/entrypoint/controller"
	"github.com/opsboard/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	summaryController   *controller.SummaryController
	movementsController *controller.MovementsController
	reportController    *controller.ReportController
	callsController     *controller.CallsController
	referenceController *controller.ReferenceController
	snapshotController  *controller.SnapshotController
	refreshRateLimiter  *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	summaryController *controller.SummaryController,
	movementsController *controller.MovementsController,
	reportController *controller.ReportController,
	callsController *controller.CallsController,
	referenceController *controller.ReferenceController,
	snapshotController *controller.SnapshotController,
	refreshRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:    healthController,
		summaryController:   summaryController,
		movementsController: movementsController,
		reportController:    reportController,
		callsController:     callsController,
		referenceController: referenceController,
		snapshotController:  snapshotController,
		refreshRateLimiter:  refreshRateLimiter,
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

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		v1.GET("/summary", r.summaryController.GetSummary)

		v1.GET("/balances", r.movementsController.GetBalances)
		v1.GET("/topups", r.movementsController.GetTopUps)
		v1.GET("/transfers", r.movementsController.GetTransfers)

		reports := v1.Group("/reports")
		{
			reports.GET("/daily", r.reportController.GetDaily)
			reports.GET("/period", r.reportController.GetPeriod)
		}

		v1.GET("/calls/overview", r.callsController.GetOverview)

		v1.GET("/reference", r.referenceController.List)
		v1.GET("/wallets", r.referenceController.ListWallets)
		v1.GET("/categories", r.referenceController.ListCategories)
		v1.GET("/currencies", r.referenceController.ListCurrencies)

		if r.refreshRateLimiter != nil {
			v1.POST("/snapshot/refresh", r.refreshRateLimiter.Middleware(), r.snapshotController.Refresh)
		} else {
			v1.POST("/snapshot/refresh", r.snapshotController.Refresh)
		}
	}
}
