package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"gramseva-be/models"
)

func newTestIssue(t *testing.T, s *MemoryStore) *models.Issue {
	t.Helper()
	issue, err := s.CreateIssue(context.Background(), NewIssue{
		Title:       "Pothole on Main Street",
		Description: "pothole",
		ImageRef:    "https://img.example/p1.jpg",
		PanchayatID: "badami",
		AICategory:  "pothole",
		ReportedBy:  primitive.NewObjectID(),
	})
	require.NoError(t, err)
	return issue
}

func advanceTo(t *testing.T, s *MemoryStore, id string, target models.IssueStatus) *models.Issue {
	t.Helper()
	issue, err := s.GetIssue(context.Background(), id)
	require.NoError(t, err)
	for issue.Status != target {
		next, ok := issue.Status.Next()
		require.True(t, ok)
		issue, err = s.SetStatus(context.Background(), id, next, nil)
		require.NoError(t, err)
	}
	return issue
}

func TestCreateIssue(t *testing.T) {
	s := NewMemoryStore()
	issue := newTestIssue(t, s)

	assert.Equal(t, models.StatusSubmitted, issue.Status)
	assert.Equal(t, "pothole", issue.AICategory)
	assert.Equal(t, "badami", issue.PanchayatID)
	assert.False(t, issue.ID.IsZero())
	assert.Empty(t, issue.Comments)
	assert.Nil(t, issue.Rating)
}

func TestCreateIssueValidation(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	cases := []struct {
		name string
		in   NewIssue
	}{
		{"empty description", NewIssue{Title: "t", ImageRef: "img", PanchayatID: "badami"}},
		{"empty title", NewIssue{Description: "d", ImageRef: "img", PanchayatID: "badami"}},
		{"missing image", NewIssue{Title: "t", Description: "d", PanchayatID: "badami"}},
		{"unknown panchayat", NewIssue{Title: "t", Description: "d", ImageRef: "img", PanchayatID: "atlantis"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.CreateIssue(ctx, tc.in)
			var validationErr *models.ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}

	// Nothing was stored by the failed creates.
	issues, err := s.ListIssues(ctx)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestCreateIssueWithoutAICategory(t *testing.T) {
	// Gateway failure degrades to an uncategorized issue, never a blocked one.
	s := NewMemoryStore()
	issue, err := s.CreateIssue(context.Background(), NewIssue{
		Title:       "Water logging near school",
		Description: "road floods after rain",
		ImageRef:    "https://img.example/p2.jpg",
		PanchayatID: "gokak",
		ReportedBy:  primitive.NewObjectID(),
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusSubmitted, issue.Status)
	assert.Empty(t, issue.AICategory)
}

func TestListIssuesNewestFirst(t *testing.T) {
	s := NewMemoryStore()
	first := newTestIssue(t, s)
	second := newTestIssue(t, s)

	issues, err := s.ListIssues(context.Background())
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, second.ID, issues[0].ID)
	assert.Equal(t, first.ID, issues[1].ID)
}

func TestGetIssueNotFound(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.GetIssue(context.Background(), primitive.NewObjectID().Hex())
	var notFoundErr *models.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestSetStatusAdvancesOneStep(t *testing.T) {
	s := NewMemoryStore()
	issue := newTestIssue(t, s)

	updated, err := s.SetStatus(context.Background(), issue.ID.Hex(), models.StatusUnderReview, nil)
	require.NoError(t, err)
	assert.Equal(t, models.StatusUnderReview, updated.Status)
}

func TestSetStatusRejectsSkip(t *testing.T) {
	s := NewMemoryStore()
	issue := newTestIssue(t, s)

	_, err := s.SetStatus(context.Background(), issue.ID.Hex(), models.StatusResolved, nil)
	var transitionErr *models.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)

	// Unchanged on failure.
	got, err := s.GetIssue(context.Background(), issue.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, models.StatusSubmitted, got.Status)
}

func TestSetStatusRejectsRegression(t *testing.T) {
	s := NewMemoryStore()
	issue := newTestIssue(t, s)
	advanceTo(t, s, issue.ID.Hex(), models.StatusAssigned)

	_, err := s.SetStatus(context.Background(), issue.ID.Hex(), models.StatusSubmitted, nil)
	var transitionErr *models.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
}

func TestSetStatusSchedule(t *testing.T) {
	s := NewMemoryStore()
	issue := newTestIssue(t, s)

	start := time.Now().AddDate(0, 0, 1)
	completion := start.AddDate(0, 0, 3)
	sched := &Schedule{Start: &start, Completion: &completion}

	// Schedule requires Assigned or later.
	_, err := s.SetStatus(context.Background(), issue.ID.Hex(), models.StatusUnderReview, sched)
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)

	advanceTo(t, s, issue.ID.Hex(), models.StatusUnderReview)
	updated, err := s.SetStatus(context.Background(), issue.ID.Hex(), models.StatusAssigned, sched)
	require.NoError(t, err)
	require.NotNil(t, updated.ScheduledStart)
	require.NotNil(t, updated.ScheduledCompletion)
	assert.True(t, updated.ScheduledStart.Equal(start))
}

func TestOverrideStatusIsAudited(t *testing.T) {
	s := NewMemoryStore()
	issue := newTestIssue(t, s)

	updated, err := s.OverrideStatus(context.Background(), issue.ID.Hex(), models.StatusResolved, "admin-1", "duplicate of an already fixed report")
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, updated.Status)
	require.Len(t, updated.Audit, 1)
	assert.Equal(t, "admin-1", updated.Audit[0].Actor)
	assert.Equal(t, models.StatusSubmitted, updated.Audit[0].From)
	assert.Equal(t, models.StatusResolved, updated.Audit[0].To)
	assert.NotEmpty(t, updated.Audit[0].Reason)
}

func TestOverrideStatusValidation(t *testing.T) {
	s := NewMemoryStore()
	issue := newTestIssue(t, s)
	id := issue.ID.Hex()
	ctx := context.Background()

	var validationErr *models.ValidationError
	_, err := s.OverrideStatus(ctx, id, models.StatusResolved, "", "already repaired")
	require.ErrorAs(t, err, &validationErr, "blank actor")

	_, err = s.OverrideStatus(ctx, id, models.StatusResolved, "admin-1", "  ")
	require.ErrorAs(t, err, &validationErr, "blank reason")

	var transitionErr *models.InvalidTransitionError
	_, err = s.OverrideStatus(ctx, id, models.StatusSubmitted, "admin-1", "no-op")
	require.ErrorAs(t, err, &transitionErr, "target equals current status")

	got, err := s.GetIssue(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSubmitted, got.Status)
	assert.Empty(t, got.Audit, "rejected overrides leave no audit entries")
}

func TestOverrideStatusKeepsFeedbackOnResolved(t *testing.T) {
	s := NewMemoryStore()
	issue := newTestIssue(t, s)
	id := issue.ID.Hex()
	ctx := context.Background()

	advanceTo(t, s, id, models.StatusResolved)
	_, err := s.AddFeedback(ctx, id, "Asha", "fixed well", 4)
	require.NoError(t, err)

	// Reopening would strand comments on a non-Resolved issue.
	_, err = s.OverrideStatus(ctx, id, models.StatusSubmitted, "admin-1", "reopening")
	var stateErr *models.InvalidStateError
	require.ErrorAs(t, err, &stateErr)

	got, err := s.GetIssue(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, got.Status)
	assert.Len(t, got.Comments, 1)
	assert.Empty(t, got.Audit)
}

func TestOverrideStatusReopensWithoutFeedback(t *testing.T) {
	s := NewMemoryStore()
	issue := newTestIssue(t, s)
	id := issue.ID.Hex()
	ctx := context.Background()
	advanceTo(t, s, id, models.StatusResolved)

	updated, err := s.OverrideStatus(ctx, id, models.StatusUnderReview, "admin-1", "marked resolved by mistake")
	require.NoError(t, err)
	assert.Equal(t, models.StatusUnderReview, updated.Status)
	require.Len(t, updated.Audit, 1)
	assert.Equal(t, models.StatusResolved, updated.Audit[0].From)
}

func TestAddFeedbackRequiresResolved(t *testing.T) {
	s := NewMemoryStore()
	issue := newTestIssue(t, s)

	_, err := s.AddFeedback(context.Background(), issue.ID.Hex(), "Asha", "great", 5)
	var stateErr *models.InvalidStateError
	require.ErrorAs(t, err, &stateErr)

	got, err := s.GetIssue(context.Background(), issue.ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, got.Comments)
}

func TestAddFeedbackAveraging(t *testing.T) {
	s := NewMemoryStore()
	issue := newTestIssue(t, s)
	advanceTo(t, s, issue.ID.Hex(), models.StatusResolved)

	updated, err := s.AddFeedback(context.Background(), issue.ID.Hex(), "Asha", "fixed quickly", 4)
	require.NoError(t, err)
	require.NotNil(t, updated.Rating)
	assert.InDelta(t, 4.0, *updated.Rating, 1e-9)

	updated, err = s.AddFeedback(context.Background(), issue.ID.Hex(), "Ravi", "could be smoother", 2)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, *updated.Rating, 1e-9)
	assert.Len(t, updated.Comments, 2)
}

func TestAddFeedbackValidation(t *testing.T) {
	s := NewMemoryStore()
	issue := newTestIssue(t, s)
	advanceTo(t, s, issue.ID.Hex(), models.StatusResolved)

	var validationErr *models.ValidationError
	_, err := s.AddFeedback(context.Background(), issue.ID.Hex(), "Asha", "", 4)
	require.ErrorAs(t, err, &validationErr)

	_, err = s.AddFeedback(context.Background(), issue.ID.Hex(), "Asha", "ok", 0)
	require.ErrorAs(t, err, &validationErr)

	_, err = s.AddFeedback(context.Background(), issue.ID.Hex(), "Asha", "ok", 6)
	require.ErrorAs(t, err, &validationErr)
}

func TestEventSubmissionAndGallery(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	by := primitive.NewObjectID()

	_, err := s.CreateSubmission(ctx, "Plantation Drive", "gokak", "https://img.example/e1.jpg", by)
	require.NoError(t, err)

	gallery, err := s.GalleryFor(ctx, "Plantation Drive")
	require.NoError(t, err)
	require.Contains(t, gallery, "gokak")
	assert.Len(t, gallery["gokak"], 1)

	// Idempotent without intervening submissions.
	again, err := s.GalleryFor(ctx, "Plantation Drive")
	require.NoError(t, err)
	assert.Equal(t, gallery, again)
}

func TestEventSubmissionValidation(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	by := primitive.NewObjectID()
	var validationErr *models.ValidationError

	_, err := s.CreateSubmission(ctx, "Marathon", "gokak", "img", by)
	require.ErrorAs(t, err, &validationErr, "unknown event")

	_, err = s.CreateSubmission(ctx, "Plantation Drive", "atlantis", "img", by)
	require.ErrorAs(t, err, &validationErr, "unknown panchayat")
}

func TestGalleryGroupingPreservesOrder(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	by := primitive.NewObjectID()

	refs := []struct{ panchayat, img string }{
		{"gokak", "g1"},
		{"badami", "b1"},
		{"gokak", "g2"},
		{"gokak", "g3"},
	}
	for _, r := range refs {
		_, err := s.CreateSubmission(ctx, "Swachh Bharat Mission", r.panchayat, r.img, by)
		require.NoError(t, err)
	}

	gallery, err := s.GalleryFor(ctx, "Swachh Bharat Mission")
	require.NoError(t, err)
	require.Len(t, gallery["gokak"], 3)
	assert.Equal(t, "g1", gallery["gokak"][0].ImageRef)
	assert.Equal(t, "g2", gallery["gokak"][1].ImageRef)
	assert.Equal(t, "g3", gallery["gokak"][2].ImageRef)
	require.Len(t, gallery["badami"], 1)

	// Other events are not mixed in.
	other, err := s.GalleryFor(ctx, "Plantation Drive")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestAnalytics(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	first := newTestIssue(t, s)
	newTestIssue(t, s)
	advanceTo(t, s, first.ID.Hex(), models.StatusResolved)
	_, err := s.AddFeedback(ctx, first.ID.Hex(), "Asha", "good", 4)
	require.NoError(t, err)

	a, err := s.Analytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), a.TotalIssues)
	assert.Equal(t, int64(1), a.ResolvedIssues)
	assert.Equal(t, int64(1), a.OpenIssues)
	assert.InDelta(t, 0.5, a.ResolutionRate, 1e-9)
	assert.InDelta(t, 4.0, a.AvgRating, 1e-9)
	require.Len(t, a.Last7Days, 7)
	assert.Equal(t, int64(2), a.Last7Days[6].Count, "both issues created today")

	require.NotEmpty(t, a.IssuesByCategory)
	assert.Equal(t, "pothole", a.IssuesByCategory[0].Name)
	assert.Equal(t, int64(2), a.IssuesByCategory[0].Count)
}
