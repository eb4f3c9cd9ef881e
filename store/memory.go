package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gramseva-be/models"
)

// MemoryStore keeps everything in process memory. It backs tests and local
// development; gin runs handlers concurrently, so simple mutex locking
// applies (last write wins, same as the production backing).
type MemoryStore struct {
	mu          sync.Mutex
	issues      []*models.Issue
	issueByID   map[string]*models.Issue
	submissions []models.EventSubmission
	now         func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		issueByID: make(map[string]*models.Issue),
		now:       time.Now,
	}
}

func (s *MemoryStore) CreateIssue(_ context.Context, in NewIssue) (*models.Issue, error) {
	if err := validateNewIssue(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	issue := &models.Issue{
		ID:                primitive.NewObjectID(),
		Title:             in.Title,
		Description:       in.Description,
		ImageRef:          in.ImageRef,
		PanchayatID:       in.PanchayatID,
		AICategory:        in.AICategory,
		SuggestedMeasures: in.SuggestedMeasures,
		Status:            models.StatusSubmitted,
		ReportedBy:        in.ReportedBy,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	s.issues = append(s.issues, issue)
	s.issueByID[issue.ID.Hex()] = issue
	cp := *issue
	return &cp, nil
}

// ListIssues returns all issues newest-first.
func (s *MemoryStore) ListIssues(_ context.Context) ([]models.Issue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Issue, 0, len(s.issues))
	for i := len(s.issues) - 1; i >= 0; i-- {
		out = append(out, *s.issues[i])
	}
	return out, nil
}

func (s *MemoryStore) GetIssue(_ context.Context, id string) (*models.Issue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	issue, ok := s.issueByID[id]
	if !ok {
		return nil, &models.NotFoundError{Kind: "issue", ID: id}
	}
	cp := *issue
	return &cp, nil
}

func (s *MemoryStore) SetStatus(_ context.Context, id string, next models.IssueStatus, sched *Schedule) (*models.Issue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	issue, ok := s.issueByID[id]
	if !ok {
		return nil, &models.NotFoundError{Kind: "issue", ID: id}
	}
	if err := checkTransition(issue, next, sched); err != nil {
		return nil, err
	}

	issue.Status = next
	if sched != nil {
		if sched.Start != nil {
			issue.ScheduledStart = sched.Start
		}
		if sched.Completion != nil {
			issue.ScheduledCompletion = sched.Completion
		}
	}
	issue.UpdatedAt = s.now()
	cp := *issue
	return &cp, nil
}

func (s *MemoryStore) OverrideStatus(_ context.Context, id string, to models.IssueStatus, actor, reason string) (*models.Issue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	issue, ok := s.issueByID[id]
	if !ok {
		return nil, &models.NotFoundError{Kind: "issue", ID: id}
	}
	if err := checkOverride(issue, to, actor, reason); err != nil {
		return nil, err
	}

	now := s.now()
	issue.Audit = append(issue.Audit, models.AuditEntry{
		Actor:     actor,
		From:      issue.Status,
		To:        to,
		Reason:    reason,
		CreatedAt: now,
	})
	issue.Status = to
	issue.UpdatedAt = now
	cp := *issue
	return &cp, nil
}

func (s *MemoryStore) AddFeedback(_ context.Context, id, author, text string, rating int) (*models.Issue, error) {
	if err := validateFeedback(text, rating); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	issue, ok := s.issueByID[id]
	if !ok {
		return nil, &models.NotFoundError{Kind: "issue", ID: id}
	}
	if err := checkFeedbackState(issue); err != nil {
		return nil, err
	}

	now := s.now()
	issue.AppendFeedback(models.Comment{
		Author:    author,
		Text:      text,
		Rating:    rating,
		CreatedAt: now,
	})
	issue.UpdatedAt = now
	cp := *issue
	return &cp, nil
}

func (s *MemoryStore) CreateSubmission(_ context.Context, eventName, panchayatID, imageRef string, by primitive.ObjectID) (*models.EventSubmission, error) {
	if err := validateSubmission(eventName, panchayatID, imageRef); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sub := models.EventSubmission{
		ID:          primitive.NewObjectID(),
		EventName:   eventName,
		PanchayatID: panchayatID,
		ImageRef:    imageRef,
		SubmittedBy: by,
		CreatedAt:   s.now(),
	}
	s.submissions = append(s.submissions, sub)
	return &sub, nil
}

func (s *MemoryStore) GalleryFor(_ context.Context, eventName string) (map[string][]models.EventSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gallery := make(map[string][]models.EventSubmission)
	for _, sub := range s.submissions {
		if sub.EventName == eventName {
			gallery[sub.PanchayatID] = append(gallery[sub.PanchayatID], sub)
		}
	}
	return gallery, nil
}

func (s *MemoryStore) Analytics(_ context.Context) (*Analytics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := &Analytics{}
	byCategory := make(map[string]int64)
	var resolutionDays float64
	var resolutionSamples int64
	var ratingSum float64
	var ratingSamples int64

	for _, issue := range s.issues {
		a.TotalIssues++
		cat := issue.AICategory
		if cat == "" {
			cat = "uncategorized"
		}
		byCategory[cat]++

		if issue.Status == models.StatusResolved {
			a.ResolvedIssues++
			if issue.ScheduledStart != nil && issue.ScheduledCompletion != nil {
				resolutionDays += issue.ScheduledCompletion.Sub(*issue.ScheduledStart).Hours() / 24
				resolutionSamples++
			}
		} else {
			a.OpenIssues++
		}
		if issue.Rating != nil {
			ratingSum += *issue.Rating
			ratingSamples++
		}
	}

	for _, cat := range sortedKeys(byCategory) {
		a.IssuesByCategory = append(a.IssuesByCategory, CategoryCount{Name: cat, Count: byCategory[cat]})
	}
	if a.TotalIssues > 0 {
		a.ResolutionRate = float64(a.ResolvedIssues) / float64(a.TotalIssues)
	}
	if resolutionSamples > 0 {
		a.AvgResolutionDays = resolutionDays / float64(resolutionSamples)
	}
	if ratingSamples > 0 {
		a.AvgRating = ratingSum / float64(ratingSamples)
	}

	a.Last7Days = make([]DayCount, 0, 7)
	for i := 6; i >= 0; i-- {
		day := s.now().AddDate(0, 0, -i)
		day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		next := day.AddDate(0, 0, 1)

		var count int64
		for _, issue := range s.issues {
			if !issue.CreatedAt.Before(day) && issue.CreatedAt.Before(next) {
				count++
			}
		}
		a.Last7Days = append(a.Last7Days, DayCount{Date: day.Format("2006-01-02"), Count: count})
	}

	return a, nil
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
