package routes

import (
	"github.com/gin-gonic/gin"

	"gramseva-be/controllers"
	"gramseva-be/middlewares"
)

// dailyIssueLimit caps citizen submissions per user per day.
const dailyIssueLimit = 5

// IssueRoutes sets up the issue lifecycle routes. Status transitions and
// overrides are authority-only.
func IssueRoutes(r *gin.Engine, ic *controllers.IssueController) {
	issue := r.Group("/api/issue", middlewares.AuthMiddleware())
	{
		issue.POST("/create", middlewares.IssueRateLimiter(dailyIssueLimit), ic.CreateIssue)
		issue.GET("", ic.GetAllIssues)
		issue.GET("/:id", ic.GetIssue)
		issue.PATCH("/:id/status", middlewares.RequireAuthority(), ic.SetStatus)
		issue.POST("/:id/override", middlewares.RequireAuthority(), ic.OverrideStatus)
		issue.POST("/:id/feedback", ic.AddFeedback)
	}
}
