package routes

import (
	"github.com/gin-gonic/gin"

	"gramseva-be/controllers"
	"gramseva-be/middlewares"
)

// EventRoutes sets up the community event routes.
func EventRoutes(r *gin.Engine, ec *controllers.EventController) {
	event := r.Group("/api/event")
	{
		event.POST("/join", middlewares.AuthMiddleware(), ec.JoinEvent)
		event.GET("/gallery/:name", ec.Gallery)
		event.GET("/catalog", ec.Catalog)
	}
}
