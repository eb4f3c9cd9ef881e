package routes

import (
	"github.com/gin-gonic/gin"

	"gramseva-be/controllers"
	"gramseva-be/middlewares"
)

// DashboardRoutes sets up the authority-only dashboard routes.
func DashboardRoutes(r *gin.Engine, dc *controllers.DashboardController) {
	dashboard := r.Group("/api/dashboard", middlewares.AuthMiddleware(), middlewares.RequireAuthority())
	{
		dashboard.GET("/analytics", dc.Analytics)
	}
}
