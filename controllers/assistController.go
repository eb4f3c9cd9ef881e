package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gramseva-be/catalog"
	"gramseva-be/gateway"
	"gramseva-be/models"
	"gramseva-be/report"
)

// AssistController serves the report-wizard endpoints: photo analysis and
// report drafting. Both degrade to a manual path when the gateway is down.
type AssistController struct {
	Assist  gateway.Assist
	Drafter *report.Drafter
}

func NewAssistController(assist gateway.Assist) *AssistController {
	return &AssistController{Assist: assist, Drafter: report.NewDrafter(assist)}
}

// Analyze identifies the problem category on an uploaded photo and suggests
// measures. An off-list model answer comes back as category "unknown" with
// the selectable categories, so the user picks manually.
func (ac *AssistController) Analyze(c *gin.Context) {
	var input struct {
		PhotoDataURI string `json:"photoDataUri" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	img, err := parseDataURI(input.PhotoDataURI)
	if err != nil {
		respondError(c, &models.ValidationError{Field: "photoDataUri", Reason: err.Error()})
		return
	}

	if ac.Assist == nil {
		// Recoverable: the user picks a category themselves.
		c.JSON(http.StatusOK, gin.H{
			"aiAssist":   "unavailable",
			"category":   gateway.CategoryUnknown,
			"categories": gateway.Categories,
		})
		return
	}

	ident, err := ac.Assist.IdentifyCategory(c.Request.Context(), img)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"aiAssist":   "unavailable",
			"category":   gateway.CategoryUnknown,
			"categories": gateway.Categories,
		})
		return
	}

	resp := gin.H{
		"aiAssist":   "ok",
		"category":   ident.Category,
		"categories": gateway.Categories,
	}
	if ident.Category == gateway.CategoryUnknown {
		resp["aiAssist"] = "unknown"
	}
	if ident.SuggestedMeasures != "" {
		resp["suggestedMeasures"] = ident.SuggestedMeasures
	}
	c.JSON(http.StatusOK, resp)
}

// DraftReport drafts the formal report for a city department or a panchayat
// head. When the gateway is unavailable the local template is used and the
// response says so.
func (ac *AssistController) DraftReport(c *gin.Context) {
	var input struct {
		PhotoDataURI string `json:"photoDataUri,omitempty"`
		Category     string `json:"category" binding:"required"`
		Recipient    string `json:"recipient" binding:"required,oneof=city panchayat"`
		PanchayatID  string `json:"panchayatId,omitempty"`
		Description  string `json:"description,omitempty"`
		Location     string `json:"location,omitempty"`
		MailTo       string `json:"mailTo,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rc := gateway.ReportContext{
		Recipient:   input.Recipient,
		Description: input.Description,
		Location:    input.Location,
	}
	if input.Recipient == "panchayat" {
		p, ok := catalog.ResolvePanchayat(input.PanchayatID)
		if !ok {
			respondError(c, &models.ValidationError{Field: "panchayatId", Reason: "unknown panchayat " + input.PanchayatID})
			return
		}
		rc.Panchayat = p.Name
	}

	var img gateway.Image
	if input.PhotoDataURI != "" {
		parsed, err := parseDataURI(input.PhotoDataURI)
		if err != nil {
			respondError(c, &models.ValidationError{Field: "photoDataUri", Reason: err.Error()})
			return
		}
		img = parsed
	}

	issue := &models.Issue{AICategory: input.Category, Description: input.Description}
	draft, err := ac.Drafter.ForIssue(c.Request.Context(), issue, img, rc)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{
		"report": draft.Text,
		"source": draft.Source,
	}
	if input.MailTo != "" {
		resp["mailto"] = report.MailtoLink(input.MailTo, "Civic issue report: "+input.Category, draft.Text)
	}
	c.JSON(http.StatusOK, resp)
}
