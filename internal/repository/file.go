package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/clipworks/video-portal-api/internal/model"
)

// ErrInvalidObjectID is returned when a caller-supplied identifier is not a
// valid ObjectID hex string.
var ErrInvalidObjectID = errors.New("invalid object id")

// FileRepository defines the interface for uploaded-file database operations.
type FileRepository interface {
	GetByID(ctx context.Context, id string) (*model.ListFile, error)
	MarkDeleted(ctx context.Context, id string) (MarkDeletedResult, error)
	ListByUser(ctx context.Context, userID string) ([]model.ListFile, error)
	ListActiveByUser(ctx context.Context, userID string, limit int64) ([]model.ListFile, error)
	TotalClipCount(ctx context.Context) (int64, error)
}

// MarkDeletedResult reports how a soft delete landed. Matched without
// modified means the file was already deleted; the caller decides whether
// that counts as success.
type MarkDeletedResult struct {
	Matched  int64
	Modified int64
}

const fileCollection = "listfile"

type fileMongoRepository struct {
	db *mongo.Database
}

func NewFileMongoRepository(db *mongo.Database) FileRepository {
	return &fileMongoRepository{db: db}
}

func (r *fileMongoRepository) GetByID(ctx context.Context, id string) (*model.ListFile, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidObjectID
	}

	result := r.db.Collection(fileCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var file model.ListFile
	if err := result.Decode(&file); err != nil {
		return nil, err
	}

	return &file, nil
}

// MarkDeleted flips the file's status to deleted. The record and the bytes
// on disk stay in place.
func (r *fileMongoRepository) MarkDeleted(ctx context.Context, id string) (MarkDeletedResult, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return MarkDeletedResult{}, ErrInvalidObjectID
	}

	result, err := r.db.Collection(fileCollection).UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"status": model.FileStatusDeleted}},
	)
	if err != nil {
		return MarkDeletedResult{}, err
	}

	return MarkDeletedResult{Matched: result.MatchedCount, Modified: result.ModifiedCount}, nil
}

// ListByUser returns all of a user's files, newest first, reduced to the
// fields the admin detail view renders.
func (r *fileMongoRepository) ListByUser(ctx context.Context, userID string) ([]model.ListFile, error) {
	cursor, err := r.db.Collection(fileCollection).Find(
		ctx,
		bson.M{"userId": userID},
		options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}}).
			SetProjection(bson.M{"originalName": 1, "status": 1, "createdAt": 1}),
	)
	if err != nil {
		return nil, err
	}

	var files []model.ListFile
	if err := cursor.All(ctx, &files); err != nil {
		return nil, err
	}

	return files, nil
}

// ListActiveByUser returns the user's unfinished files (queued or running),
// newest first, capped at limit.
func (r *fileMongoRepository) ListActiveByUser(ctx context.Context, userID string, limit int64) ([]model.ListFile, error) {
	cursor, err := r.db.Collection(fileCollection).Find(
		ctx,
		bson.M{
			"userId": userID,
			"status": bson.M{"$in": []string{model.FileStatusQueued, model.FileStatusRunning}},
		},
		options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}}).
			SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}

	var files []model.ListFile
	if err := cursor.All(ctx, &files); err != nil {
		return nil, err
	}

	return files, nil
}

// TotalClipCount sums the clips array length over every file record. Records
// without a clips field count as zero.
func (r *fileMongoRepository) TotalClipCount(ctx context.Context) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": bson.M{"$size": bson.M{"$ifNull": bson.A{"$clips", bson.A{}}}}},
		}}},
	}

	cursor, err := r.db.Collection(fileCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}

	if len(results) == 0 {
		return 0, nil
	}

	return results[0].Total, nil
}
