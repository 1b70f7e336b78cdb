package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactMessage represents a message submitted via the public contact form
// and triaged through the admin panel.
type ContactMessage struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Subject      string             `bson:"subject" json:"subject"`
	Message      string             `bson:"message" json:"message"`
	Read         bool               `bson:"read" json:"read"`
	Replied      bool               `bson:"replied" json:"replied"`
	Status       string             `bson:"status" json:"status"`
	Priority     string             `bson:"priority" json:"priority"`
	Tags         []string           `bson:"tags" json:"tags"`
	ReplyContent string             `bson:"replyContent,omitempty" json:"replyContent,omitempty"`
	ReplyDate    *time.Time         `bson:"replyDate,omitempty" json:"replyDate,omitempty"`
	ReplyBy      string             `bson:"replyBy,omitempty" json:"replyBy,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Contact message statuses. "deleted" is a soft marker; the record stays in
// the collection.
const (
	StatusNew      = "new"
	StatusRead     = "read"
	StatusReplied  = "replied"
	StatusArchived = "archived"
	StatusDeleted  = "deleted"
)

// Contact message priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// ValidPriority reports whether p is one of the allowed priority values.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ContactListOptions carries filter and pagination parameters for listing
// contact messages.
type ContactListOptions struct {
	// Status filters by message status: "", "all", or one of the status
	// constants. Empty string and "all" return all messages.
	Status string
	Limit  int
	Offset int
}

// ContactStatusCounts aggregates message counts per status. Unread counts
// records with read == false regardless of status.
type ContactStatusCounts struct {
	All      int64 `json:"all"`
	New      int64 `json:"new"`
	Read     int64 `json:"read"`
	Replied  int64 `json:"replied"`
	Archived int64 `json:"archived"`
	Deleted  int64 `json:"deleted"`
	Unread   int64 `json:"unread"`
}
