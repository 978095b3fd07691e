// internal/domain/models/rating.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rating is a user's review of a completed collection.
//
// One rating per request is the expectation but is not enforced anywhere;
// aggregates must tolerate duplicates and simply include every record.
type Rating struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CollectionRequestID primitive.ObjectID `bson:"collection_request_id" json:"collection_request_id"`
	CollectorID         primitive.ObjectID `bson:"collector_id" json:"collector_id"`

	Rating   int    `bson:"rating" json:"rating"` // 1..5
	Feedback string `bson:"feedback,omitempty" json:"feedback,omitempty"`

	RatingDate time.Time `bson:"rating_date" json:"rating_date"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
