package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/clipworks/video-portal-api/internal/model"
)

// TokenHistoryRepository defines the interface for token-history database
// operations.
type TokenHistoryRepository interface {
	ListByUser(ctx context.Context, userID string) ([]model.TokenHistoryRecord, error)
	ListConsumedByExecution(ctx context.Context, userID, executionID string) ([]model.TokenHistoryRecord, error)
}

const tokenHistoryCollection = "token_history"

type tokenHistoryMongoRepository struct {
	db *mongo.Database
}

func NewTokenHistoryMongoRepository(db *mongo.Database) TokenHistoryRepository {
	return &tokenHistoryMongoRepository{db: db}
}

func (r *tokenHistoryMongoRepository) ListByUser(ctx context.Context, userID string) ([]model.TokenHistoryRecord, error) {
	cursor, err := r.db.Collection(tokenHistoryCollection).Find(
		ctx,
		bson.M{"userId": userID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}

	var records []model.TokenHistoryRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// ListConsumedByExecution returns the video_creation records of one
// execution that consumed tokens, i.e. whose change is negative.
func (r *tokenHistoryMongoRepository) ListConsumedByExecution(
	ctx context.Context,
	userID, executionID string,
) ([]model.TokenHistoryRecord, error) {
	cursor, err := r.db.Collection(tokenHistoryCollection).Find(ctx, bson.M{
		"userId":      userID,
		"executionId": executionID,
		"type":        model.TokenTypeVideoCreation,
		"change":      bson.M{"$lt": 0},
	})
	if err != nil {
		return nil, err
	}

	var records []model.TokenHistoryRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}
