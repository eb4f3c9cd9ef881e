package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"gramseva-be/catalog"
	"gramseva-be/store"
)

// EventController serves community event participation: joining an event
// with a photo and the per-event gallery grouped by panchayat.
type EventController struct {
	Store store.IssueStore
}

func NewEventController(s store.IssueStore) *EventController {
	return &EventController{Store: s}
}

// JoinEvent records a citizen's photo submission for a community event.
func (ec *EventController) JoinEvent(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	submittedBy, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var input struct {
		Event       string `json:"event" binding:"required"`
		PanchayatID string `json:"panchayatId" binding:"required"`
		ImageRef    string `json:"imageRef" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := ec.Store.CreateSubmission(c.Request.Context(), input.Event, input.PanchayatID, input.ImageRef, submittedBy)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// Gallery returns an event's submissions grouped by panchayat, preserving
// submission order within each group.
func (ec *EventController) Gallery(c *gin.Context) {
	eventName := c.Param("name")

	gallery, err := ec.Store.GalleryFor(c.Request.Context(), eventName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"event":   eventName,
		"gallery": gallery,
	})
}

// Catalog exposes the configured events and the panchayat reference list so
// the UI can populate its dropdowns.
func (ec *EventController) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"events":     catalog.Events,
		"panchayats": catalog.Panchayats,
	})
}
