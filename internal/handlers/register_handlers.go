package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/bigborda/caixa_backend/internal/core/ports/services"
	"github.com/bigborda/caixa_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	registerRecordRoutes(v1, services.Record, services.Summary)
	registerReconciliationRoutes(v1, services.Reconciliation)
	registerDeliveryRoutes(v1, services.Delivery)
	registerStaffRoutes(v1, services.Staff)
	registerScheduleRoutes(v1, services.Schedule)
	registerReportingRoutes(v1, services.Reporting)
}
