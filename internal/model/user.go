package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents a portal account. UserID is the externally assigned
// identifier the frontend works with; it is distinct from the Mongo _id.
// Tokens is the canonical balance — the drifted user_tokens collection of
// the original portal is not read here.
type User struct {
	ID           bson.ObjectID        `bson:"_id,omitempty"       json:"-"`
	UserID       string               `bson:"userId"              json:"userId"`
	Email        string               `bson:"email"               json:"email"`
	Password     string               `bson:"password,omitempty"  json:"-"`
	Name         string               `bson:"name"                json:"name"`
	Tokens       int64                `bson:"tokens,omitempty"    json:"tokens"`
	IsActive     bool                 `bson:"isActive"            json:"isActive"`
	IsAdmin      bool                 `bson:"isAdmin,omitempty"   json:"isAdmin"`
	IsSuspended  bool                 `bson:"isSuspended"         json:"isSuspended"`
	LastActive   time.Time            `bson:"lastActive,omitempty" json:"lastActive"`
	TokenHistory []TokenHistoryRecord `bson:"tokenHistory,omitempty" json:"tokenHistory,omitempty"`
	CreatedAt    time.Time            `bson:"created_at"          json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updated_at"          json:"-"`
}
