package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Аутентификация оператора
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.login)
		auth.POST("/logout", h.logout)
	}

	// Защищенные маршруты дашборда
	protected := api.Group("")
	protected.Use(h.SessionAuthMiddleware())
	{
		incidents := protected.Group("/incidents")
		{
			incidents.POST("", h.createIncident)
			incidents.GET("", h.listIncidents)
			incidents.GET("/:id", h.getIncident)
			incidents.PATCH("/:id", h.updateIncidentStatus)
		}

		protected.GET("/sensors", h.listSensors)
		protected.GET("/dashboard", h.dashboard)
		protected.POST("/simulate", h.simulate)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
