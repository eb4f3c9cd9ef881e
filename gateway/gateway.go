package gateway

import (
	"context"
	"errors"
	"strings"
)

// ErrUnavailable wraps any assist failure. AI assist is advisory only:
// every caller must degrade to a manual-entry path, never abort the
// enclosing user action.
var ErrUnavailable = errors.New("ai assist unavailable")

// CategoryUnknown is returned when the model answers outside the configured
// enumeration. Callers treat it as "ask the user to pick", not as a failure.
const CategoryUnknown = "unknown"

// Categories is the closed set of problem labels the gateway may return.
var Categories = []string{
	"pothole",
	"overflowing bin",
	"broken streetlight",
	"garbage dump",
	"water logging",
	"damaged public property",
}

// Image is an in-memory photo of a reported problem.
type Image struct {
	Data     []byte
	MIMEType string
}

// Identification is the outcome of analyzing a problem photo.
type Identification struct {
	Category          string `json:"category"`
	SuggestedMeasures string `json:"suggestedMeasures"`
}

// ReportContext names the recipient of a drafted report: either a city
// department or a panchayat head, with the citizen's own description.
type ReportContext struct {
	Recipient   string // "city" or "panchayat"
	Department  string // city department name, when Recipient is "city"
	Panchayat   string // panchayat display name, when Recipient is "panchayat"
	Description string // citizen-supplied description
	Location    string // pinpoint location data
}

// Assist is the boundary to the generative model. It identifies problem
// categories, suggests measures and drafts reports; it never delivers
// anything itself.
type Assist interface {
	IdentifyCategory(ctx context.Context, img Image) (Identification, error)
	SuggestMeasures(ctx context.Context, category string) (string, error)
	DraftReport(ctx context.Context, img Image, category string, rc ReportContext) (string, error)
}

// NormalizeCategory maps a raw model answer onto the enumeration, or
// CategoryUnknown when it is off-list.
func NormalizeCategory(raw string) string {
	normalized := strings.ToLower(strings.TrimSpace(strings.Trim(raw, ".\"'")))
	for _, c := range Categories {
		if c == normalized {
			return c
		}
	}
	return CategoryUnknown
}
