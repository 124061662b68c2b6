package router

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nutriplan/backend/internal/api"
	"github.com/nutriplan/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(planHandler *api.PlanHandler, apiKeyExists bool, logger *zerolog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS())

	router.GET("/", api.Root)
	router.GET("/health", api.HealthCheck(apiKeyExists))

	planHandler.RegisterRoutes(router)

	return router
}
