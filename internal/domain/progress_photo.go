package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgressPhoto stores metadata about a client's progress photo.
// The image itself lives in S3.
type ProgressPhoto struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID    primitive.ObjectID `bson:"clientId" json:"clientId"`
	S3ObjectKey string             `bson:"s3ObjectKey" json:"-"`
	ContentType string             `bson:"contentType" json:"contentType"`
	Size        int64              `bson:"size,omitempty" json:"size,omitempty"`
	TakenOn     string             `bson:"takenOn" json:"takenOn"` // YYYY-MM-DD
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	UploadedAt  time.Time          `bson:"uploadedAt" json:"uploadedAt"`

	// Filled per request, never stored.
	URL string `bson:"-" json:"url,omitempty"`
}
