package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is citizen feedback on a resolved issue. Immutable once appended.
type Comment struct {
	Author    string    `bson:"author" json:"author"`
	Text      string    `bson:"text" json:"text"`
	Rating    int       `bson:"rating" json:"rating"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// AuditEntry records an administrative status override. Overrides are the
// only path around the one-step-forward rule and are never silent.
type AuditEntry struct {
	Actor     string      `bson:"actor" json:"actor"`
	From      IssueStatus `bson:"from" json:"from"`
	To        IssueStatus `bson:"to" json:"to"`
	Reason    string      `bson:"reason" json:"reason"`
	CreatedAt time.Time   `bson:"createdAt" json:"createdAt"`
}

// Issue represents a civic problem reported by a citizen to their panchayat
// or city. It is never deleted; status moves forward through the lifecycle
// and feedback accumulates after resolution.
type Issue struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	ImageRef    string             `bson:"imageRef" json:"imageRef"`
	PanchayatID string             `bson:"panchayatId" json:"panchayatId"`

	// Set once at creation from the AI assist gateway; empty when the
	// gateway was unavailable or answered off-list.
	AICategory        string `bson:"aiCategory,omitempty" json:"aiCategory,omitempty"`
	SuggestedMeasures string `bson:"suggestedMeasures,omitempty" json:"suggestedMeasures,omitempty"`

	Status              IssueStatus `bson:"status" json:"status"`
	ScheduledStart      *time.Time  `bson:"scheduledStart,omitempty" json:"scheduledStart,omitempty"`
	ScheduledCompletion *time.Time  `bson:"scheduledCompletion,omitempty" json:"scheduledCompletion,omitempty"`

	Comments []Comment    `bson:"comments,omitempty" json:"comments,omitempty"`
	Rating   *float64     `bson:"rating,omitempty" json:"rating,omitempty"`
	Audit    []AuditEntry `bson:"audit,omitempty" json:"audit,omitempty"`

	ReportedBy primitive.ObjectID `bson:"reportedBy" json:"reportedBy"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AppendFeedback adds a comment and folds its rating into the running
// average. The first comment sets the average outright.
func (i *Issue) AppendFeedback(c Comment) {
	n := float64(len(i.Comments))
	i.Comments = append(i.Comments, c)
	avg := float64(c.Rating)
	if i.Rating != nil {
		avg = (*i.Rating*n + float64(c.Rating)) / (n + 1)
	}
	i.Rating = &avg
}
