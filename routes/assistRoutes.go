package routes

import (
	"github.com/gin-gonic/gin"

	"gramseva-be/controllers"
	"gramseva-be/middlewares"
)

// AssistRoutes sets up the report-wizard AI assist routes.
func AssistRoutes(r *gin.Engine, ac *controllers.AssistController) {
	assist := r.Group("/api/assist", middlewares.AuthMiddleware())
	{
		assist.POST("/analyze", ac.Analyze)
		assist.POST("/draft", ac.DraftReport)
	}
}
