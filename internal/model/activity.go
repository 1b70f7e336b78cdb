package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity is a single entry in the append-only audit ledger. Entries are
// never updated or deleted once written.
type Activity struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type        string             `bson:"type" json:"type"`
	Action      string             `bson:"action" json:"action"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Details     string             `bson:"details,omitempty" json:"details,omitempty"`
	Path        string             `bson:"path,omitempty" json:"path,omitempty"`
	User        string             `bson:"user" json:"user"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}

// Activity entity types
const (
	TypeBlog       = "blog"
	TypeProject    = "project"
	TypeSkill      = "skill"
	TypeExperience = "experience"
	TypeEducation  = "education"
	TypeProfile    = "profile"
	TypeContact    = "contact"
	TypeOther      = "other"
)

// Well-known activity actions. Action is free-form; these are the values the
// backend itself writes.
const (
	ActionCreate   = "create"
	ActionUpdate   = "update"
	ActionDelete   = "delete"
	ActionView     = "view"
	ActionReply    = "reply"
	ActionArchive  = "archive"
	ActionMarkRead = "mark_read"
)

// ActivityInput carries the caller-supplied fields for a new ledger entry.
// User is optional; when empty the ledger attributes the entry from the
// session (or "Visitor").
type ActivityInput struct {
	Type        string `json:"type"`
	Action      string `json:"action"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Details     string `json:"details"`
	Path        string `json:"path"`
	User        string `json:"user"`
}

// ActivityListOptions carries filter and pagination parameters for the
// paginated ledger read. Page is 1-based.
type ActivityListOptions struct {
	// Type filters by entity type; empty returns all types.
	Type string
	// IncludeViews opts in to "view" actions, which are excluded by default.
	IncludeViews bool
	Page         int
	PageSize     int
}

// ActivityPage is one page of ledger entries plus pagination metadata.
// Total reflects the filtered count, not the full ledger size.
type ActivityPage struct {
	Items      []*Activity `json:"activities"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}
