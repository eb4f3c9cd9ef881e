package store

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gramseva-be/catalog"
	"gramseva-be/models"
)

// NewIssue carries everything needed to record a citizen report. AICategory
// and SuggestedMeasures come from the assist gateway and stay empty when it
// was unavailable; creation never blocks on AI assist.
type NewIssue struct {
	Title             string
	Description       string
	ImageRef          string
	PanchayatID       string
	AICategory        string
	SuggestedMeasures string
	ReportedBy        primitive.ObjectID
}

// Schedule holds the work dates an authority sets once an issue is assigned.
type Schedule struct {
	Start      *time.Time
	Completion *time.Time
}

// CategoryCount is one slice of the issues-by-category breakdown.
type CategoryCount struct {
	Name  string `bson:"name" json:"name"`
	Count int64  `bson:"value" json:"count"`
}

// DayCount is the number of issues submitted on one calendar day.
type DayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// Analytics aggregates the numbers behind the panchayat dashboard.
type Analytics struct {
	TotalIssues       int64           `json:"totalIssues"`
	ResolvedIssues    int64           `json:"resolvedIssues"`
	OpenIssues        int64           `json:"openIssues"`
	ResolutionRate    float64         `json:"resolutionRate"`
	AvgResolutionDays float64         `json:"avgResolutionDays"`
	AvgRating         float64         `json:"avgRating"`
	IssuesByCategory  []CategoryCount `json:"issuesByCategory"`
	Last7Days         []DayCount      `json:"last7Days"`
}

// IssueStore is the persistence boundary for issues, feedback and event
// submissions. Backed by MongoDB in production and by memory in tests.
type IssueStore interface {
	CreateIssue(ctx context.Context, in NewIssue) (*models.Issue, error)
	ListIssues(ctx context.Context) ([]models.Issue, error)
	GetIssue(ctx context.Context, id string) (*models.Issue, error)

	// SetStatus advances an issue one lifecycle step. The schedule may only
	// accompany a move into Assigned or later.
	SetStatus(ctx context.Context, id string, next models.IssueStatus, sched *Schedule) (*models.Issue, error)

	// OverrideStatus is the administrative escape hatch around the
	// one-step rule. It requires an actor and a reason, must actually
	// change the status, and cannot move an issue with feedback off
	// Resolved. Every call leaves an audit entry on the issue.
	OverrideStatus(ctx context.Context, id string, to models.IssueStatus, actor, reason string) (*models.Issue, error)

	AddFeedback(ctx context.Context, id, author, text string, rating int) (*models.Issue, error)

	CreateSubmission(ctx context.Context, eventName, panchayatID, imageRef string, by primitive.ObjectID) (*models.EventSubmission, error)

	// GalleryFor groups an event's submissions by panchayat, preserving
	// insertion order within each group. Read-only and idempotent.
	GalleryFor(ctx context.Context, eventName string) (map[string][]models.EventSubmission, error)

	Analytics(ctx context.Context) (*Analytics, error)
}

func validateNewIssue(in NewIssue) error {
	if strings.TrimSpace(in.Title) == "" {
		return &models.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if strings.TrimSpace(in.Description) == "" {
		return &models.ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if strings.TrimSpace(in.ImageRef) == "" {
		return &models.ValidationError{Field: "imageRef", Reason: "a photo of the problem is required"}
	}
	if _, ok := catalog.ResolvePanchayat(in.PanchayatID); !ok {
		return &models.ValidationError{Field: "panchayatId", Reason: "unknown panchayat " + in.PanchayatID}
	}
	return nil
}

func validateFeedback(text string, rating int) error {
	if strings.TrimSpace(text) == "" {
		return &models.ValidationError{Field: "text", Reason: "must not be empty"}
	}
	if rating < 1 || rating > 5 {
		return &models.ValidationError{Field: "rating", Reason: "must be between 1 and 5"}
	}
	return nil
}

func validateSubmission(eventName, panchayatID, imageRef string) error {
	if !catalog.ValidEvent(eventName) {
		return &models.ValidationError{Field: "event", Reason: "unknown event " + eventName}
	}
	if _, ok := catalog.ResolvePanchayat(panchayatID); !ok {
		return &models.ValidationError{Field: "panchayatId", Reason: "unknown panchayat " + panchayatID}
	}
	if strings.TrimSpace(imageRef) == "" {
		return &models.ValidationError{Field: "imageRef", Reason: "a photo is required"}
	}
	return nil
}

// checkTransition applies the lifecycle rules shared by both backings.
func checkTransition(issue *models.Issue, next models.IssueStatus, sched *Schedule) error {
	if !issue.Status.CanAdvanceTo(next) {
		return &models.InvalidTransitionError{From: issue.Status, To: next}
	}
	if sched != nil && !next.AllowsSchedule() {
		return &models.ValidationError{Field: "schedule", Reason: "work dates require status Assigned or later"}
	}
	return nil
}

// checkOverride guards the administrative path shared by both backings. An
// override may jump anywhere in the lifecycle, but the audit entry must name
// who and why, a no-op target is rejected, and comments are append-only: an
// issue that has collected feedback stays Resolved.
func checkOverride(issue *models.Issue, to models.IssueStatus, actor, reason string) error {
	if strings.TrimSpace(actor) == "" {
		return &models.ValidationError{Field: "actor", Reason: "must not be empty"}
	}
	if strings.TrimSpace(reason) == "" {
		return &models.ValidationError{Field: "reason", Reason: "must not be empty"}
	}
	if to == issue.Status {
		return &models.InvalidTransitionError{From: issue.Status, To: to}
	}
	if to != models.StatusResolved && len(issue.Comments) > 0 {
		return &models.InvalidStateError{Op: "override to " + string(to), Status: issue.Status}
	}
	return nil
}

func checkFeedbackState(issue *models.Issue) error {
	if issue.Status != models.StatusResolved {
		return &models.InvalidStateError{Op: "feedback", Status: issue.Status}
	}
	return nil
}
