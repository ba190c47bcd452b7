package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Session is a server-verified login session. The JTI ties a signed token
// back to this document so a session can be revoked independently of the
// token's own expiry.
type Session struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID    string        `bson:"user_id"       json:"userId"`
	JTI       string        `bson:"jti"           json:"-"`
	ExpiresAt time.Time     `bson:"expires_at"    json:"expiresAt"`
	CreatedAt time.Time     `bson:"created_at"    json:"createdAt"`
	UpdatedAt time.Time     `bson:"updated_at"    json:"-"`
}
