package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	portssvc "github.com/ecomkit/prices/internal/core/ports/services"
	"github.com/ecomkit/prices/internal/middleware"
	"github.com/ecomkit/prices/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container. The rate limiter guards the public
// formatting endpoint; pass nil to disable it (tests do).
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	RegisterValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services, rateLimiter)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1")

	var formatMiddleware []gin.HandlerFunc
	if rateLimiter != nil {
		formatMiddleware = append(formatMiddleware, middleware.RateLimit(rateLimiter))
	}

	registerFormatRoutes(v1, services.Formatter, formatMiddleware...)
	registerPriceRecordRoutes(v1, services.Pricing)
}
