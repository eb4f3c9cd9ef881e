package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gramseva-be/store"
)

// DashboardController serves the panchayat dashboard aggregates.
type DashboardController struct {
	Store store.IssueStore
}

func NewDashboardController(s store.IssueStore) *DashboardController {
	return &DashboardController{Store: s}
}

// Analytics returns issue totals, category breakdown, last-7-days counts,
// resolution rate and average citizen rating.
func (dc *DashboardController) Analytics(c *gin.Context) {
	analytics, err := dc.Store.Analytics(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, analytics)
}
