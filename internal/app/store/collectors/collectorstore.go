package collectorstore

import (
	"context"
	"time"

	"github.com/dalemusser/recyclehub/internal/app/system/normalize"
	"github.com/dalemusser/recyclehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("collectors")}
}

// Create inserts a new collector after normalizing the name fields.
// FullName is a join key (the name-fallback match), so it goes through
// the same normalizer as the embedded snapshots it is matched against.
func (s *Store) Create(ctx context.Context, c models.Collector) (models.Collector, error) {
	c.ID = primitive.NewObjectID()
	c.FullName = normalize.Name(c.FullName)
	c.FullNameCI = text.Fold(c.FullName)
	c.Email = normalize.Email(c.Email)

	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return models.Collector{}, err
	}
	return c, nil
}

// GetByID loads a collector by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Collector, error) {
	var c models.Collector
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all collectors, most recently created first.
func (s *Store) List(ctx context.Context) ([]models.Collector, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Collector
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetActive writes the is_active flag.
func (s *Store) SetActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	return s.setFlag(ctx, id, "is_active", active)
}

// SetVerified writes the is_verified flag.
func (s *Store) SetVerified(ctx context.Context, id primitive.ObjectID, verified bool) error {
	return s.setFlag(ctx, id, "is_verified", verified)
}

func (s *Store) setFlag(ctx context.Context, id primitive.ObjectID, field string, value bool) error {
	set := bson.M{
		field:        value,
		"updated_at": time.Now().UTC(),
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a collector by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
