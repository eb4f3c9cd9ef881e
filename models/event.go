package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventSubmission is a citizen's photo entry for a community event.
// Immutable after creation; galleries group entries by event, then panchayat.
type EventSubmission struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventName   string             `bson:"eventName" json:"eventName"`
	PanchayatID string             `bson:"panchayatId" json:"panchayatId"`
	ImageRef    string             `bson:"imageRef" json:"imageRef"`
	SubmittedBy primitive.ObjectID `bson:"submittedBy" json:"submittedBy"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
