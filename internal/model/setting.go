package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Setting is one key/value pair in the site settings collection. Keys are
// unique; values are opaque strings interpreted by the presentation layer.
type Setting struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Key       string             `bson:"key" json:"key"`
	Value     string             `bson:"value" json:"value"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
