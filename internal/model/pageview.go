package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PageView is a per-path hit counter. Path is the unique key, stored
// lowercase.
type PageView struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Path        string             `bson:"path" json:"path"`
	Count       int64              `bson:"count" json:"count"`
	LastUpdated time.Time          `bson:"lastUpdated" json:"lastUpdated"`
}
