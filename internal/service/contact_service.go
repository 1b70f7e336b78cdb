package service

import (
	"context"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/pkg/auth"
)

// ContactService defines the business logic for the contact message
// workflow: new → read → replied → archived/deleted. Every status-changing
// operation appends a ledger event attributed to the acting admin; ledger
// failures never fail the underlying transition.
type ContactService interface {
	// Submit stores a new contact message with status "new". msg.ID and
	// timestamps are populated by the implementation.
	Submit(ctx context.Context, msg *model.ContactMessage, actor *auth.User) error

	GetByID(ctx context.Context, id string) (*model.ContactMessage, error)
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)
	CountByStatus(ctx context.Context) (*model.ContactStatusCounts, error)

	// MarkAsRead sets the read flag and moves status to "read" (or back to
	// "new" when isRead is false).
	MarkAsRead(ctx context.Context, id string, isRead bool, actor *auth.User) (*model.ContactMessage, error)
	// MarkAsReplied toggles the replied flag only; it does not change status
	// and records no ledger event.
	MarkAsReplied(ctx context.Context, id string, isReplied bool) (*model.ContactMessage, error)
	// Reply stores the reply content/date/author and moves status to
	// "replied".
	Reply(ctx context.Context, id, content, by string, actor *auth.User) (*model.ContactMessage, error)
	Archive(ctx context.Context, id string, actor *auth.User) (*model.ContactMessage, error)
	// SoftDelete marks the message deleted without removing the record.
	SoftDelete(ctx context.Context, id string, actor *auth.User) (*model.ContactMessage, error)

	AddTag(ctx context.Context, id, tag string) (*model.ContactMessage, error)
	SetPriority(ctx context.Context, id, priority string) (*model.ContactMessage, error)
}
