// Package recordstore loads whole-collection snapshots for the insights
// engine. The engine consumes collections wholesale and recomputes every
// derived value per call, so this store reads all four collections in
// their natural (insertion) order and hands them over as one Snapshot.
package recordstore

import (
	"context"

	"github.com/dalemusser/recyclehub/internal/app/insights"
	"github.com/dalemusser/recyclehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// LoadSnapshot reads the current state of the users, collectors, requests
// and ratings collections. No caching: callers load a fresh snapshot per
// computation so mutations are visible on the next view.
func (s *Store) LoadSnapshot(ctx context.Context) (insights.Snapshot, error) {
	var snap insights.Snapshot

	if err := loadAll(ctx, s.db.Collection("users"), &snap.Users); err != nil {
		return insights.Snapshot{}, err
	}
	if err := loadAll(ctx, s.db.Collection("collectors"), &snap.Collectors); err != nil {
		return insights.Snapshot{}, err
	}
	if err := loadAll(ctx, s.db.Collection("requests"), &snap.Requests); err != nil {
		return insights.Snapshot{}, err
	}
	if err := loadAll(ctx, s.db.Collection("ratings"), &snap.Ratings); err != nil {
		return insights.Snapshot{}, err
	}
	return snap, nil
}

func loadAll[T models.User | models.Collector | models.Request | models.Rating](ctx context.Context, coll *mongo.Collection, out *[]T) error {
	cur, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	defer cur.Close(ctx)
	return cur.All(ctx, out)
}
