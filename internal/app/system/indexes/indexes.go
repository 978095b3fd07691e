// Package indexes creates the MongoDB indexes the stores rely on.
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// EnsureAll is called at startup. Index creation is idempotent; errors are
// aggregated so every problem is visible and startup can fail fast.
func EnsureAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	var problems []string

	if err := ensureUsers(ctx, db, logger); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureCollectors(ctx, db, logger); err != nil {
		problems = append(problems, "collectors: "+err.Error())
	}
	if err := ensureRequests(ctx, db, logger); err != nil {
		problems = append(problems, "requests: "+err.Error())
	}
	if err := ensureRatings(ctx, db, logger); err != nil {
		problems = append(problems, "ratings: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// ensureUsers enforces the email identity key: requests join to users by
// email, so duplicates would make resolution ambiguous.
func ensureUsers(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	return createIndexes(ctx, db.Collection("users"), logger, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("created_at_desc"),
		},
	})
}

func ensureCollectors(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	return createIndexes(ctx, db.Collection("collectors"), logger, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "full_name_ci", Value: 1}},
			Options: options.Index().SetName("full_name_ci"),
		},
	})
}

func ensureRequests(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	return createIndexes(ctx, db.Collection("requests"), logger, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "request_date", Value: -1}},
			Options: options.Index().SetName("request_date_desc"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("status"),
		},
	})
}

func ensureRatings(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	return createIndexes(ctx, db.Collection("ratings"), logger, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "collector_id", Value: 1}},
			Options: options.Index().SetName("collector_id"),
		},
		{
			Keys:    bson.D{{Key: "collection_request_id", Value: 1}},
			Options: options.Index().SetName("collection_request_id"),
		},
	})
}

func createIndexes(ctx context.Context, coll *mongo.Collection, logger *zap.Logger, models []mongo.IndexModel) error {
	names, err := coll.Indexes().CreateMany(ctx, models)
	if err != nil {
		return err
	}
	logger.Info("indexes ensured",
		zap.String("collection", coll.Name()),
		zap.Strings("indexes", names))
	return nil
}
