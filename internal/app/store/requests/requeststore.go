package requeststore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/recyclehub/internal/app/system/normalize"
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
	return &Store{c: db.Collection("requests")}
}

// ErrBadStatus is returned when a status outside the request status enum
// is written.
var ErrBadStatus = errors.New(`status must be "Pending"|"Accepted"|"In Progress"|"Completed"|"Rejected"`)

// Create inserts a new collection request. Status defaults to Pending and
// request_date to now; the embedded requester email is normalized because
// it is the join key back to the users collection.
func (s *Store) Create(ctx context.Context, r models.Request) (models.Request, error) {
	r.ID = primitive.NewObjectID()
	if r.Status == "" {
		r.Status = models.StatusPending
	}
	if !models.ValidStatus(r.Status) {
		return models.Request{}, ErrBadStatus
	}

	now := time.Now().UTC()
	if r.RequestDate.IsZero() {
		r.RequestDate = now
	}
	r.UserInfo.Email = normalize.Email(r.UserInfo.Email)
	r.CreatedAt = now
	r.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, r); err != nil {
		return models.Request{}, err
	}
	return r, nil
}

// GetByID loads a request by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Request, error) {
	var r models.Request
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&r); err != nil {
		return nil, err
	}
	return &r, nil
}

// List returns requests, most recent first. A non-empty status narrows
// the result to that status.
func (s *Store) List(ctx context.Context, status string) ([]models.Request, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "request_date", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Request
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetStatus writes a new status. The value is validated against the
// status enum; everything derived from status (completion rates, revenue,
// the pending-request feed) recomputes from the next snapshot.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	if !models.ValidStatus(status) {
		return ErrBadStatus
	}
	set := bson.M{
		"status":     status,
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

// Delete removes a request by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
