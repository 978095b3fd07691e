package ratingstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/recyclehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("ratings")}
}

// ErrBadRating is returned for a rating value outside 1..5.
var ErrBadRating = errors.New("rating must be between 1 and 5")

// Create inserts a rating. There is deliberately no one-per-request
// uniqueness check: duplicates are tolerated downstream, where every
// rating record present simply counts toward the averages.
func (s *Store) Create(ctx context.Context, r models.Rating) (models.Rating, error) {
	if r.Rating < 1 || r.Rating > 5 {
		return models.Rating{}, ErrBadRating
	}

	r.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	if r.RatingDate.IsZero() {
		r.RatingDate = now
	}
	r.CreatedAt = now

	if _, err := s.c.InsertOne(ctx, r); err != nil {
		return models.Rating{}, err
	}
	return r, nil
}

// List returns all ratings, most recent first.
func (s *Store) List(ctx context.Context) ([]models.Rating, error) {
	return s.find(ctx, bson.M{})
}

// ListByCollector returns the ratings for one collector, most recent first.
func (s *Store) ListByCollector(ctx context.Context, collectorID primitive.ObjectID) ([]models.Rating, error) {
	return s.find(ctx, bson.M{"collector_id": collectorID})
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.Rating, error) {
	opts := options.Find().SetSort(bson.D{{Key: "rating_date", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Rating
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a rating by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
