package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gramseva-be/models"
)

const opTimeout = 10 * time.Second

// MongoStore is the production backing. Read-modify-write on status and
// feedback is last-write-wins; the workflow is authority-driven and
// synchronous, so no stronger guarantee is required.
type MongoStore struct {
	issues      *mongo.Collection
	submissions *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		issues:      db.Collection("issues"),
		submissions: db.Collection("eventSubmissions"),
	}
}

func (s *MongoStore) CreateIssue(ctx context.Context, in NewIssue) (*models.Issue, error) {
	if err := validateNewIssue(in); err != nil {
		return nil, err
	}

	now := time.Now()
	issue := models.Issue{
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

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := s.issues.InsertOne(ctx, issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

func (s *MongoStore) ListIssues(ctx context.Context) ([]models.Issue, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.issues.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var issues []models.Issue
	if err := cursor.All(ctx, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

func (s *MongoStore) GetIssue(ctx context.Context, id string) (*models.Issue, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &models.NotFoundError{Kind: "issue", ID: id}
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var issue models.Issue
	err = s.issues.FindOne(ctx, bson.M{"_id": objID}).Decode(&issue)
	if err == mongo.ErrNoDocuments {
		return nil, &models.NotFoundError{Kind: "issue", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

func (s *MongoStore) SetStatus(ctx context.Context, id string, next models.IssueStatus, sched *Schedule) (*models.Issue, error) {
	issue, err := s.GetIssue(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkTransition(issue, next, sched); err != nil {
		return nil, err
	}

	issue.Status = next
	update := bson.M{"status": next, "updatedAt": time.Now()}
	if sched != nil {
		if sched.Start != nil {
			issue.ScheduledStart = sched.Start
			update["scheduledStart"] = *sched.Start
		}
		if sched.Completion != nil {
			issue.ScheduledCompletion = sched.Completion
			update["scheduledCompletion"] = *sched.Completion
		}
	}

	if err := s.updateIssue(ctx, issue.ID, bson.M{"$set": update}); err != nil {
		return nil, err
	}
	return issue, nil
}

func (s *MongoStore) OverrideStatus(ctx context.Context, id string, to models.IssueStatus, actor, reason string) (*models.Issue, error) {
	issue, err := s.GetIssue(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkOverride(issue, to, actor, reason); err != nil {
		return nil, err
	}

	now := time.Now()
	entry := models.AuditEntry{
		Actor:     actor,
		From:      issue.Status,
		To:        to,
		Reason:    reason,
		CreatedAt: now,
	}
	issue.Audit = append(issue.Audit, entry)
	issue.Status = to

	update := bson.M{
		"$set":  bson.M{"status": to, "updatedAt": now},
		"$push": bson.M{"audit": entry},
	}
	if err := s.updateIssue(ctx, issue.ID, update); err != nil {
		return nil, err
	}
	return issue, nil
}

func (s *MongoStore) AddFeedback(ctx context.Context, id, author, text string, rating int) (*models.Issue, error) {
	if err := validateFeedback(text, rating); err != nil {
		return nil, err
	}

	issue, err := s.GetIssue(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkFeedbackState(issue); err != nil {
		return nil, err
	}

	now := time.Now()
	comment := models.Comment{Author: author, Text: text, Rating: rating, CreatedAt: now}
	issue.AppendFeedback(comment)

	update := bson.M{
		"$set":  bson.M{"rating": *issue.Rating, "updatedAt": now},
		"$push": bson.M{"comments": comment},
	}
	if err := s.updateIssue(ctx, issue.ID, update); err != nil {
		return nil, err
	}
	return issue, nil
}

func (s *MongoStore) updateIssue(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := s.issues.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

func (s *MongoStore) CreateSubmission(ctx context.Context, eventName, panchayatID, imageRef string, by primitive.ObjectID) (*models.EventSubmission, error) {
	if err := validateSubmission(eventName, panchayatID, imageRef); err != nil {
		return nil, err
	}

	sub := models.EventSubmission{
		ID:          primitive.NewObjectID(),
		EventName:   eventName,
		PanchayatID: panchayatID,
		ImageRef:    imageRef,
		SubmittedBy: by,
		CreatedAt:   time.Now(),
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := s.submissions.InsertOne(ctx, sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *MongoStore) GalleryFor(ctx context.Context, eventName string) (map[string][]models.EventSubmission, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// Insertion order within each panchayat group follows creation time.
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := s.submissions.Find(ctx, bson.M{"eventName": eventName}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subs []models.EventSubmission
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}

	gallery := make(map[string][]models.EventSubmission)
	for _, sub := range subs {
		gallery[sub.PanchayatID] = append(gallery[sub.PanchayatID], sub)
	}
	return gallery, nil
}

func (s *MongoStore) Analytics(ctx context.Context) (*Analytics, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	a := &Analytics{}

	var err error
	a.TotalIssues, err = s.issues.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	a.ResolvedIssues, err = s.issues.CountDocuments(ctx, bson.M{"status": models.StatusResolved})
	if err != nil {
		return nil, err
	}
	a.OpenIssues = a.TotalIssues - a.ResolvedIssues
	if a.TotalIssues > 0 {
		a.ResolutionRate = float64(a.ResolvedIssues) / float64(a.TotalIssues)
	}

	categoryPipeline := []bson.M{
		{"$group": bson.M{
			"_id":   bson.M{"$ifNull": []interface{}{"$aiCategory", "uncategorized"}},
			"count": bson.M{"$sum": 1},
		}},
		{"$project": bson.M{"name": "$_id", "value": "$count", "_id": 0}},
		{"$sort": bson.M{"name": 1}},
	}
	categoryCursor, err := s.issues.Aggregate(ctx, categoryPipeline)
	if err != nil {
		return nil, err
	}
	defer categoryCursor.Close(ctx)
	if err := categoryCursor.All(ctx, &a.IssuesByCategory); err != nil {
		return nil, err
	}

	// Average days between scheduled start and completion on resolved issues.
	resolutionPipeline := []bson.M{
		{"$match": bson.M{
			"status":              models.StatusResolved,
			"scheduledStart":      bson.M{"$exists": true},
			"scheduledCompletion": bson.M{"$exists": true},
		}},
		{"$project": bson.M{
			"days": bson.M{"$divide": []interface{}{
				bson.M{"$subtract": []interface{}{"$scheduledCompletion", "$scheduledStart"}},
				1000 * 60 * 60 * 24,
			}},
		}},
		{"$group": bson.M{"_id": nil, "avg": bson.M{"$avg": "$days"}}},
	}
	if avg, err := s.aggregateAvg(ctx, resolutionPipeline); err == nil {
		a.AvgResolutionDays = avg
	}

	ratingPipeline := []bson.M{
		{"$match": bson.M{"rating": bson.M{"$exists": true}}},
		{"$group": bson.M{"_id": nil, "avg": bson.M{"$avg": "$rating"}}},
	}
	if avg, err := s.aggregateAvg(ctx, ratingPipeline); err == nil {
		a.AvgRating = avg
	}

	a.Last7Days = make([]DayCount, 0, 7)
	for i := 6; i >= 0; i-- {
		day := time.Now().AddDate(0, 0, -i)
		day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		next := day.AddDate(0, 0, 1)

		count, err := s.issues.CountDocuments(ctx, bson.M{
			"createdAt": bson.M{"$gte": day, "$lt": next},
		})
		if err != nil {
			count = 0
		}
		a.Last7Days = append(a.Last7Days, DayCount{Date: day.Format("2006-01-02"), Count: count})
	}

	return a, nil
}

func (s *MongoStore) aggregateAvg(ctx context.Context, pipeline []bson.M) (float64, error) {
	cursor, err := s.issues.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Avg float64 `bson:"avg"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Avg, nil
}
