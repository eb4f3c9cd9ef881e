package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"gramseva-be/gateway"
	"gramseva-be/models"
	"gramseva-be/store"
)

// IssueController serves the issue lifecycle: citizen submission, listing,
// authority transitions and post-resolution feedback. The store and the
// assist gateway are injected; no package-level state.
type IssueController struct {
	Store  store.IssueStore
	Assist gateway.Assist
}

func NewIssueController(s store.IssueStore, assist gateway.Assist) *IssueController {
	return &IssueController{Store: s, Assist: assist}
}

// CreateIssue records a new citizen report. The assist gateway is consulted
// synchronously for a category and suggested measures but is advisory only:
// when it fails or answers off-list the issue is still created.
func (ic *IssueController) CreateIssue(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	reportedBy, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var input struct {
		Title        string `json:"title" binding:"required,max=200"`
		Description  string `json:"description" binding:"required,max=1000"`
		PanchayatID  string `json:"panchayatId" binding:"required"`
		ImageRef     string `json:"imageRef" binding:"required"`
		PhotoDataURI string `json:"photoDataUri,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newIssue := store.NewIssue{
		Title:       input.Title,
		Description: input.Description,
		ImageRef:    input.ImageRef,
		PanchayatID: input.PanchayatID,
		ReportedBy:  reportedBy,
	}

	aiAssist := "skipped"
	photo := input.PhotoDataURI
	if photo == "" {
		photo = input.ImageRef
	}
	if img, err := parseDataURI(photo); err == nil && ic.Assist != nil {
		ident, err := ic.Assist.IdentifyCategory(c.Request.Context(), img)
		switch {
		case err != nil:
			aiAssist = "unavailable"
		case ident.Category == gateway.CategoryUnknown:
			aiAssist = "unknown"
		default:
			aiAssist = "ok"
			newIssue.AICategory = ident.Category
			newIssue.SuggestedMeasures = ident.SuggestedMeasures
		}
	}

	issue, err := ic.Store.CreateIssue(c.Request.Context(), newIssue)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"issue":    issue,
		"aiAssist": aiAssist,
		"steps":    models.StatusSteps(issue.Status),
	})
}

// GetAllIssues lists issues newest-first, each with its step tracker.
func (ic *IssueController) GetAllIssues(c *gin.Context) {
	issues, err := ic.Store.ListIssues(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	type issueWithSteps struct {
		models.Issue
		Steps []models.StatusStep `json:"steps"`
	}

	out := make([]issueWithSteps, 0, len(issues))
	for _, issue := range issues {
		out = append(out, issueWithSteps{Issue: issue, Steps: models.StatusSteps(issue.Status)})
	}

	c.JSON(http.StatusOK, gin.H{
		"issues":      out,
		"totalIssues": len(out),
	})
}

// GetIssue retrieves one issue by id.
func (ic *IssueController) GetIssue(c *gin.Context) {
	issue, err := ic.Store.GetIssue(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"issue": issue,
		"steps": models.StatusSteps(issue.Status),
	})
}

// SetStatus advances an issue one lifecycle step. Authority only; skipping
// and regressing are rejected, the override endpoint is the audited
// exception.
func (ic *IssueController) SetStatus(c *gin.Context) {
	var input struct {
		Status              string     `json:"status" binding:"required"`
		ScheduledStart      *time.Time `json:"scheduledStart,omitempty"`
		ScheduledCompletion *time.Time `json:"scheduledCompletion,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	next, err := models.ParseStatus(input.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	var sched *store.Schedule
	if input.ScheduledStart != nil || input.ScheduledCompletion != nil {
		sched = &store.Schedule{Start: input.ScheduledStart, Completion: input.ScheduledCompletion}
	}

	issue, err := ic.Store.SetStatus(c.Request.Context(), c.Param("id"), next, sched)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"issue": issue,
		"steps": models.StatusSteps(issue.Status),
	})
}

// OverrideStatus is the administrative path around the one-step rule. It
// requires a reason and records who did it.
func (ic *IssueController) OverrideStatus(c *gin.Context) {
	userID, _ := c.Get("user_id")
	actor, _ := userID.(string)

	var input struct {
		Status string `json:"status" binding:"required"`
		Reason string `json:"reason" binding:"required,max=500"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	to, err := models.ParseStatus(input.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	issue, err := ic.Store.OverrideStatus(c.Request.Context(), c.Param("id"), to, actor, input.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"issue": issue,
		"steps": models.StatusSteps(issue.Status),
	})
}

// AddFeedback appends a citizen comment with a 1-5 rating to a resolved
// issue and returns the recomputed average.
func (ic *IssueController) AddFeedback(c *gin.Context) {
	var input struct {
		Author string `json:"author" binding:"required,max=100"`
		Text   string `json:"text" binding:"required,max=1000"`
		Rating int    `json:"rating" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issue, err := ic.Store.AddFeedback(c.Request.Context(), c.Param("id"), input.Author, input.Text, input.Rating)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"issue":  issue,
		"rating": issue.Rating,
	})
}
