package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// TokenTypeVideoCreation marks balance changes produced by a video
// processing run.
const TokenTypeVideoCreation = "video_creation"

// TokenHistoryRecord is one signed change to a user's token balance,
// grouped by the execution that produced it.
type TokenHistoryRecord struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID      string        `bson:"userId"        json:"userId"`
	ExecutionID string        `bson:"executionId"   json:"executionId"`
	Type        string        `bson:"type"          json:"type"`
	Change      int64         `bson:"change"        json:"change"`
	CreatedAt   time.Time     `bson:"createdAt"     json:"createdAt"`
}
