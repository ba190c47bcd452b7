package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// File statuses. A soft-deleted file keeps its record and its bytes on disk;
// only the status flips.
const (
	FileStatusQueued  = "queued"
	FileStatusRunning = "running"
	FileStatusDone    = "done"
	FileStatusFailed  = "failed"
	FileStatusDeleted = "deleted"
)

// ListFile is an uploaded video and its processing state. ExtractPath is
// relative to the configured upload root.
type ListFile struct {
	ID            bson.ObjectID `bson:"_id,omitempty"          json:"-"`
	UserID        string        `bson:"userId"                 json:"userId"`
	OriginalName  string        `bson:"originalName"           json:"originalName"`
	Status        string        `bson:"status"                 json:"status"`
	ExtractPath   string        `bson:"extractPath,omitempty"  json:"-"`
	Clips         []string      `bson:"clips,omitempty"        json:"clips,omitempty"`
	QueuePosition int           `bson:"queuePosition,omitempty" json:"queuePosition"`
	CreatedAt     time.Time     `bson:"createdAt"              json:"createdAt"`
}
