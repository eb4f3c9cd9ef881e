package report

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"gramseva-be/catalog"
	"gramseva-be/gateway"
	"gramseva-be/models"
)

// Draft is a drafted report plus how it was produced. Source is "ai" when
// the gateway answered and "template" when it degraded to the local fallback.
type Draft struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// Drafter composes human-readable reports for an issue's recipient. The
// gateway is advisory: when it is unavailable the drafter falls back to a
// deterministic local template instead of failing the citizen's action.
type Drafter struct {
	assist gateway.Assist
}

func NewDrafter(assist gateway.Assist) *Drafter {
	return &Drafter{assist: assist}
}

// ForIssue drafts a report for issue addressed per rc. Never returns
// gateway.ErrUnavailable; degradation is visible through Draft.Source.
func (d *Drafter) ForIssue(ctx context.Context, issue *models.Issue, img gateway.Image, rc gateway.ReportContext) (Draft, error) {
	category := issue.AICategory
	if category == "" {
		category = "civic issue"
	}
	if rc.Description == "" {
		rc.Description = issue.Description
	}
	if rc.Recipient == "panchayat" && rc.Panchayat == "" {
		if p, ok := catalog.ResolvePanchayat(issue.PanchayatID); ok {
			rc.Panchayat = p.Name
		}
	}

	if d.assist != nil {
		text, err := d.assist.DraftReport(ctx, img, category, rc)
		if err == nil {
			return Draft{Text: text, Source: "ai"}, nil
		}
	}
	return Draft{Text: Fallback(category, rc), Source: "template"}, nil
}

// Fallback renders the manual-entry template used when AI assist is down.
func Fallback(category string, rc gateway.ReportContext) string {
	var b strings.Builder

	if rc.Recipient == "panchayat" {
		fmt.Fprintf(&b, "Subject: Civic issue report: %s\n\n", category)
		fmt.Fprintf(&b, "Respected Head of %s Panchayat,\n\n", rc.Panchayat)
		fmt.Fprintf(&b, "I would like to report a %s in our area.", category)
		if rc.Description != "" {
			fmt.Fprintf(&b, " %s", rc.Description)
		}
		b.WriteString("\n\nA photo of the problem is attached. Kindly arrange for it to be looked into.\n\n")
		b.WriteString("Respectfully,\nA concerned citizen")
		return b.String()
	}

	fmt.Fprintf(&b, "Subject: Report of %s\n\n", category)
	b.WriteString("To the Public Works Department,\n\n")
	fmt.Fprintf(&b, "This is to report a %s", category)
	if rc.Location != "" {
		fmt.Fprintf(&b, " at %s", rc.Location)
	}
	b.WriteString(".")
	if rc.Description != "" {
		fmt.Fprintf(&b, " %s", rc.Description)
	}
	b.WriteString("\n\nPlease arrange inspection and repair at the earliest.\n\nRegards,\nA concerned citizen")
	return b.String()
}

// MailtoLink builds the mailto: action the UI attaches to a drafted report.
// Composing the link is presentation; nothing here sends mail.
func MailtoLink(to, subject, body string) string {
	return "mailto:" + to +
		"?subject=" + url.QueryEscape(subject) +
		"&body=" + url.QueryEscape(body)
}
