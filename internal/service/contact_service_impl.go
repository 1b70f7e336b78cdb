package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
	"github.com/devfolio/backend/pkg/auth"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo     repository.ContactRepository
	activity ActivityService
}

// NewContactService creates a ContactService backed by the given repository.
// Workflow transitions are mirrored into the activity ledger.
func NewContactService(repo repository.ContactRepository, activity ActivityService) ContactService {
	return &contactServiceImpl{repo: repo, activity: activity}
}

func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.ContactMessage, actor *auth.User) error {
	if msg.Name == "" || msg.Email == "" || msg.Subject == "" || msg.Message == "" {
		return fmt.Errorf("%w: name, email, subject and message are required", ErrValidation)
	}

	now := time.Now().UTC()
	msg.Read = false
	msg.Replied = false
	msg.Status = model.StatusNew
	if msg.Priority == "" {
		msg.Priority = model.PriorityMedium
	}
	if msg.Tags == nil {
		msg.Tags = []string{}
	}
	msg.CreatedAt = now
	msg.UpdatedAt = now

	if err := s.repo.Save(ctx, msg); err != nil {
		return err
	}

	s.logTransition(ctx, actor, model.ActivityInput{
		Type:        model.TypeContact,
		Action:      model.ActionCreate,
		Title:       msg.Subject,
		Description: fmt.Sprintf("New message from %s <%s>", msg.Name, msg.Email),
		Path:        messagePath(msg),
	})
	return nil
}

func (s *contactServiceImpl) GetByID(ctx context.Context, id string) (*model.ContactMessage, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	return s.repo.List(ctx, opts)
}

func (s *contactServiceImpl) CountByStatus(ctx context.Context) (*model.ContactStatusCounts, error) {
	return s.repo.CountByStatus(ctx)
}

func (s *contactServiceImpl) MarkAsRead(ctx context.Context, id string, isRead bool, actor *auth.User) (*model.ContactMessage, error) {
	msg, err := s.repo.SetRead(ctx, id, isRead)
	if err != nil {
		return nil, err
	}

	label := "unread"
	if isRead {
		label = "read"
	}
	s.logTransition(ctx, actor, model.ActivityInput{
		Type:        model.TypeContact,
		Action:      model.ActionMarkRead,
		Title:       msg.Subject,
		Description: fmt.Sprintf("Message from %s marked as %s", msg.Name, label),
		Path:        messagePath(msg),
	})
	return msg, nil
}

func (s *contactServiceImpl) MarkAsReplied(ctx context.Context, id string, isReplied bool) (*model.ContactMessage, error) {
	return s.repo.SetReplied(ctx, id, isReplied)
}

func (s *contactServiceImpl) Reply(ctx context.Context, id, content, by string, actor *auth.User) (*model.ContactMessage, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: reply content is required", ErrValidation)
	}
	if by == "" {
		by = resolveActor("", actor)
	}

	msg, err := s.repo.SetReply(ctx, id, content, by, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.logTransition(ctx, actor, model.ActivityInput{
		Type:        model.TypeContact,
		Action:      model.ActionReply,
		Title:       msg.Subject,
		Description: fmt.Sprintf("Replied to %s", msg.Name),
		Path:        messagePath(msg),
	})
	return msg, nil
}

func (s *contactServiceImpl) Archive(ctx context.Context, id string, actor *auth.User) (*model.ContactMessage, error) {
	msg, err := s.repo.SetStatus(ctx, id, model.StatusArchived)
	if err != nil {
		return nil, err
	}

	s.logTransition(ctx, actor, model.ActivityInput{
		Type:        model.TypeContact,
		Action:      model.ActionArchive,
		Title:       msg.Subject,
		Description: fmt.Sprintf("Archived message from %s", msg.Name),
		Path:        messagePath(msg),
	})
	return msg, nil
}

func (s *contactServiceImpl) SoftDelete(ctx context.Context, id string, actor *auth.User) (*model.ContactMessage, error) {
	msg, err := s.repo.SetStatus(ctx, id, model.StatusDeleted)
	if err != nil {
		return nil, err
	}

	s.logTransition(ctx, actor, model.ActivityInput{
		Type:        model.TypeContact,
		Action:      model.ActionDelete,
		Title:       msg.Subject,
		Description: fmt.Sprintf("Deleted message from %s", msg.Name),
		Path:        messagePath(msg),
	})
	return msg, nil
}

func (s *contactServiceImpl) AddTag(ctx context.Context, id, tag string) (*model.ContactMessage, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil, fmt.Errorf("%w: tag is required", ErrValidation)
	}
	return s.repo.AddTag(ctx, id, tag)
}

func (s *contactServiceImpl) SetPriority(ctx context.Context, id, priority string) (*model.ContactMessage, error) {
	if !model.ValidPriority(priority) {
		return nil, fmt.Errorf("%w: priority must be low, medium or high", ErrValidation)
	}
	return s.repo.SetPriority(ctx, id, priority)
}

// logTransition mirrors a workflow transition into the ledger. The append
// happens only after a successful mutation and its failure is logged, never
// propagated.
func (s *contactServiceImpl) logTransition(ctx context.Context, actor *auth.User, in model.ActivityInput) {
	if _, _, err := s.activity.Record(ctx, in, actor); err != nil {
		slog.Error("contact: activity log failed",
			"action", in.Action,
			"title", in.Title,
			"error", err,
		)
	}
}

func messagePath(msg *model.ContactMessage) string {
	return "/admin/messages/" + msg.ID.Hex()
}
