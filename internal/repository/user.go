package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/clipworks/video-portal-api/internal/model"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	GetByUserID(ctx context.Context, userID string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	TouchLastActive(ctx context.Context, userID string, at time.Time) (int64, error)
	CountAll(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	CountSuspended(ctx context.Context) (int64, error)
	CountOnline(ctx context.Context, since time.Time) (int64, error)
}

const userCollection = "users"

type userMongoRepository struct {
	db *mongo.Database
}

func NewUserMongoRepository(db *mongo.Database) UserRepository {
	return &userMongoRepository{db: db}
}

// GetByUserID looks a user up by their external identifier. The password
// hash is projected out; only GetByEmail (the login path) reads it.
func (r *userMongoRepository) GetByUserID(ctx context.Context, userID string) (*model.User, error) {
	result := r.db.Collection(userCollection).FindOne(
		ctx,
		bson.M{"userId": userID},
		options.FindOne().SetProjection(bson.M{"password": 0}),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var user model.User
	if err := result.Decode(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userMongoRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	result := r.db.Collection(userCollection).FindOne(ctx, bson.M{"email": email})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var user model.User
	if err := result.Decode(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

// TouchLastActive sets the user's lastActive timestamp and reports how many
// documents matched. Zero matches means the user does not exist.
func (r *userMongoRepository) TouchLastActive(ctx context.Context, userID string, at time.Time) (int64, error) {
	result, err := r.db.Collection(userCollection).UpdateOne(
		ctx,
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{"lastActive": at}},
	)
	if err != nil {
		return 0, err
	}

	return result.MatchedCount, nil
}

func (r *userMongoRepository) CountAll(ctx context.Context) (int64, error) {
	return r.db.Collection(userCollection).CountDocuments(ctx, bson.M{})
}

func (r *userMongoRepository) CountActive(ctx context.Context) (int64, error) {
	return r.db.Collection(userCollection).CountDocuments(ctx, bson.M{"isActive": true})
}

func (r *userMongoRepository) CountSuspended(ctx context.Context) (int64, error) {
	return r.db.Collection(userCollection).CountDocuments(ctx, bson.M{"isSuspended": true})
}

// CountOnline counts users whose lastActive falls within the online window.
func (r *userMongoRepository) CountOnline(ctx context.Context, since time.Time) (int64, error) {
	return r.db.Collection(userCollection).CountDocuments(
		ctx,
		bson.M{"lastActive": bson.M{"$gte": since}},
	)
}
