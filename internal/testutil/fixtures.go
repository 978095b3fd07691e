package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/recyclehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data. Records are
// inserted directly, bypassing the stores, so store behavior under test
// never shapes its own fixtures.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a test user with the given name and email.
func (f *Fixtures) CreateUser(ctx context.Context, name, email string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:         primitive.NewObjectID(),
		FullName:   name,
		FullNameCI: text.Fold(name),
		Email:      email,
		City:       "Test City",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateCollector inserts a test collector with the given name.
func (f *Fixtures) CreateCollector(ctx context.Context, name string) models.Collector {
	f.t.Helper()

	now := time.Now().UTC()
	c := models.Collector{
		ID:              primitive.NewObjectID(),
		FullName:        name,
		FullNameCI:      text.Fold(name),
		Email:           "collector@test.com",
		Specializations: []string{"Plastic"},
		VehicleType:     "van",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if _, err := f.db.Collection("collectors").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test collector: %v", err)
	}
	return c
}

// CreateRequest inserts a test request with the given status and total
// value, dated now. Use the returned value's fields to wire embedded
// references in follow-up fixtures.
func (f *Fixtures) CreateRequest(ctx context.Context, status, totalValue string, userInfo models.UserInfo, ref *models.CollectorRef) models.Request {
	f.t.Helper()

	now := time.Now().UTC()
	r := models.Request{
		ID:                  primitive.NewObjectID(),
		Status:              status,
		RequestDate:         now,
		TotalEstimatedValue: totalValue,
		UserInfo:            userInfo,
		CollectorInfo:       ref,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if _, err := f.db.Collection("requests").InsertOne(ctx, r); err != nil {
		f.t.Fatalf("failed to create test request: %v", err)
	}
	return r
}

// CreateRating inserts a test rating for the given collector and request.
func (f *Fixtures) CreateRating(ctx context.Context, collectorID, requestID primitive.ObjectID, rating int, feedback string) models.Rating {
	f.t.Helper()

	now := time.Now().UTC()
	r := models.Rating{
		ID:                  primitive.NewObjectID(),
		CollectionRequestID: requestID,
		CollectorID:         collectorID,
		Rating:              rating,
		Feedback:            feedback,
		RatingDate:          now,
		CreatedAt:           now,
	}
	if _, err := f.db.Collection("ratings").InsertOne(ctx, r); err != nil {
		f.t.Fatalf("failed to create test rating: %v", err)
	}
	return r
}
