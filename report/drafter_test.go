package report

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gramseva-be/gateway"
	"gramseva-be/models"
)

type stubAssist struct {
	report string
	err    error
}

func (s *stubAssist) IdentifyCategory(context.Context, gateway.Image) (gateway.Identification, error) {
	return gateway.Identification{}, s.err
}

func (s *stubAssist) SuggestMeasures(context.Context, string) (string, error) {
	return "", s.err
}

func (s *stubAssist) DraftReport(context.Context, gateway.Image, string, gateway.ReportContext) (string, error) {
	return s.report, s.err
}

func TestForIssueUsesGateway(t *testing.T) {
	d := NewDrafter(&stubAssist{report: "Dear Sir, there is a pothole."})
	issue := &models.Issue{AICategory: "pothole", Description: "near the market", PanchayatID: "badami"}

	draft, err := d.ForIssue(context.Background(), issue, gateway.Image{}, gateway.ReportContext{Recipient: "panchayat"})
	require.NoError(t, err)
	assert.Equal(t, "ai", draft.Source)
	assert.Equal(t, "Dear Sir, there is a pothole.", draft.Text)
}

func TestForIssueFallsBackWhenGatewayDown(t *testing.T) {
	d := NewDrafter(&stubAssist{err: gateway.ErrUnavailable})
	issue := &models.Issue{AICategory: "pothole", Description: "near the market", PanchayatID: "badami"}

	draft, err := d.ForIssue(context.Background(), issue, gateway.Image{}, gateway.ReportContext{Recipient: "panchayat"})
	require.NoError(t, err, "gateway failure must not fail the draft")
	assert.Equal(t, "template", draft.Source)
	assert.Contains(t, draft.Text, "pothole")
	assert.Contains(t, draft.Text, "Badami (Bagalkot)", "panchayat name resolved from the catalog")
	assert.Contains(t, draft.Text, "near the market")
}

func TestForIssueWithoutGateway(t *testing.T) {
	d := NewDrafter(nil)
	issue := &models.Issue{Description: "streetlight out on Oak corner"}

	draft, err := d.ForIssue(context.Background(), issue, gateway.Image{}, gateway.ReportContext{
		Recipient: "city",
		Location:  "Latitude: 12.97, Longitude: 77.59",
	})
	require.NoError(t, err)
	assert.Equal(t, "template", draft.Source)
	assert.Contains(t, draft.Text, "Public Works Department")
	assert.Contains(t, draft.Text, "Latitude: 12.97")
}

func TestFallbackCityTemplate(t *testing.T) {
	text := Fallback("water logging", gateway.ReportContext{
		Recipient:   "city",
		Location:    "near the primary school",
		Description: "Children cannot reach school after rain.",
	})
	assert.True(t, strings.HasPrefix(text, "Subject:"))
	assert.Contains(t, text, "water logging")
	assert.Contains(t, text, "near the primary school")
}

func TestMailtoLink(t *testing.T) {
	link := MailtoLink("pwd@city.gov.in", "Report of pothole", "line one\nline two")
	assert.True(t, strings.HasPrefix(link, "mailto:pwd@city.gov.in?"))
	assert.Contains(t, link, "subject=Report+of+pothole")
	assert.NotContains(t, link, "\n", "body is escaped")
}
