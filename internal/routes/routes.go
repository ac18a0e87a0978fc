package routes

import (
	"github.com/ErikArmenta/SistemaGestionSensores/internal/core/container"
	"github.com/ErikArmenta/SistemaGestionSensores/internal/metrics"
	"github.com/ErikArmenta/SistemaGestionSensores/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes cuelga las tres vistas bajo /api, todas dentro de la
// sesión del navegador.
func RegisterAPIRoutes(router *gin.Engine, c *container.Container) {
	api := router.Group("/api")
	api.Use(c.Sessions.Middleware())

	c.CatalogHandler.RegisterRoutes(api)
	c.RequestHandler.RegisterRoutes(api)
	c.DashboardHandler.RegisterRoutes(api)
}

// RegisterPageRoutes cuelga las páginas HTML renderizadas por el servidor.
func RegisterPageRoutes(router *gin.Engine, c *container.Container) {
	pages := router.Group("")
	pages.Use(c.Sessions.Middleware())

	c.DashboardHandler.RegisterPageRoutes(pages)
}

// RegisterUtilityRoutes cuelga salud y métricas, fuera de la sesión.
func RegisterUtilityRoutes(router *gin.Engine) {
	router.GET("/health", middleware.HealthCheckHandler())
	router.GET("/metrics", metrics.Handler())
}
