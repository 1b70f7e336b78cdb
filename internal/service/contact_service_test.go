package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/pkg/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ---------------------------------------------------------------------------
// Mock ActivityService — records ledger calls for workflow tests
// ---------------------------------------------------------------------------

type mockActivityService struct {
	mu        sync.Mutex
	inputs    []model.ActivityInput
	actors    []*auth.User
	recordErr error
}

func (m *mockActivityService) Record(ctx context.Context, in model.ActivityInput, actor *auth.User) (*model.Activity, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.recordErr != nil {
		return nil, false, m.recordErr
	}
	m.inputs = append(m.inputs, in)
	m.actors = append(m.actors, actor)
	return &model.Activity{
		Type: in.Type, Action: in.Action, Title: in.Title, Timestamp: time.Now(),
	}, false, nil
}

func (m *mockActivityService) Recent(ctx context.Context, limit int) ([]*model.Activity, error) {
	return nil, nil
}

func (m *mockActivityService) List(ctx context.Context, opts model.ActivityListOptions) (*model.ActivityPage, error) {
	return &model.ActivityPage{}, nil
}

func (m *mockActivityService) recorded() []model.ActivityInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.ActivityInput(nil), m.inputs...)
}

// ---------------------------------------------------------------------------
// Mock ContactRepository
// ---------------------------------------------------------------------------

type mockContactRepository struct {
	saveFunc          func(ctx context.Context, msg *model.ContactMessage) error
	findByIDFunc      func(ctx context.Context, id string) (*model.ContactMessage, error)
	listFunc          func(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)
	setReadFunc       func(ctx context.Context, id string, read bool) (*model.ContactMessage, error)
	setRepliedFunc    func(ctx context.Context, id string, replied bool) (*model.ContactMessage, error)
	setReplyFunc      func(ctx context.Context, id, content, by string, at time.Time) (*model.ContactMessage, error)
	setStatusFunc     func(ctx context.Context, id, status string) (*model.ContactMessage, error)
	addTagFunc        func(ctx context.Context, id, tag string) (*model.ContactMessage, error)
	setPriorityFunc   func(ctx context.Context, id, priority string) (*model.ContactMessage, error)
	countByStatusFunc func(ctx context.Context) (*model.ContactStatusCounts, error)
}

func (m *mockContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, msg)
	}
	return nil
}
func (m *mockContactRepository) FindByID(ctx context.Context, id string) (*model.ContactMessage, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return &model.ContactMessage{}, nil
}
func (m *mockContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}
func (m *mockContactRepository) SetRead(ctx context.Context, id string, read bool) (*model.ContactMessage, error) {
	if m.setReadFunc != nil {
		return m.setReadFunc(ctx, id, read)
	}
	return &model.ContactMessage{}, nil
}
func (m *mockContactRepository) SetReplied(ctx context.Context, id string, replied bool) (*model.ContactMessage, error) {
	if m.setRepliedFunc != nil {
		return m.setRepliedFunc(ctx, id, replied)
	}
	return &model.ContactMessage{}, nil
}
func (m *mockContactRepository) SetReply(ctx context.Context, id, content, by string, at time.Time) (*model.ContactMessage, error) {
	if m.setReplyFunc != nil {
		return m.setReplyFunc(ctx, id, content, by, at)
	}
	return &model.ContactMessage{}, nil
}
func (m *mockContactRepository) SetStatus(ctx context.Context, id, status string) (*model.ContactMessage, error) {
	if m.setStatusFunc != nil {
		return m.setStatusFunc(ctx, id, status)
	}
	return &model.ContactMessage{}, nil
}
func (m *mockContactRepository) AddTag(ctx context.Context, id, tag string) (*model.ContactMessage, error) {
	if m.addTagFunc != nil {
		return m.addTagFunc(ctx, id, tag)
	}
	return &model.ContactMessage{}, nil
}
func (m *mockContactRepository) SetPriority(ctx context.Context, id, priority string) (*model.ContactMessage, error) {
	if m.setPriorityFunc != nil {
		return m.setPriorityFunc(ctx, id, priority)
	}
	return &model.ContactMessage{}, nil
}
func (m *mockContactRepository) CountByStatus(ctx context.Context) (*model.ContactStatusCounts, error) {
	if m.countByStatusFunc != nil {
		return m.countByStatusFunc(ctx)
	}
	return &model.ContactStatusCounts{}, nil
}

// ---------------------------------------------------------------------------
// Submit tests
// ---------------------------------------------------------------------------

func TestContactService_Submit_SetsDefaults(t *testing.T) {
	before := time.Now()
	var saved *model.ContactMessage
	repo := &mockContactRepository{
		saveFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			saved = msg
			return nil
		},
	}
	ledger := &mockActivityService{}
	svc := NewContactService(repo, ledger)

	msg := &model.ContactMessage{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "Nice site",
	}
	if err := svc.Submit(context.Background(), msg, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil {
		t.Fatal("expected Save to be called")
	}
	if saved.Status != model.StatusNew {
		t.Errorf("expected status=new, got %q", saved.Status)
	}
	if saved.Priority != model.PriorityMedium {
		t.Errorf("expected priority=medium, got %q", saved.Priority)
	}
	if saved.Read || saved.Replied {
		t.Error("expected read and replied to default to false")
	}
	if saved.Tags == nil {
		t.Error("expected tags to default to empty slice")
	}
	if saved.CreatedAt.Before(before.Add(-time.Second)) {
		t.Errorf("CreatedAt %v earlier than call time", saved.CreatedAt)
	}

	got := ledger.recorded()
	if len(got) != 1 || got[0].Action != model.ActionCreate || got[0].Type != model.TypeContact {
		t.Errorf("expected one contact/create ledger event, got %+v", got)
	}
}

func TestContactService_Submit_MissingFields(t *testing.T) {
	svc := NewContactService(&mockContactRepository{}, &mockActivityService{})

	err := svc.Submit(context.Background(), &model.ContactMessage{Name: "Jane"}, nil)
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestContactService_Submit_NoLedgerOnSaveFailure(t *testing.T) {
	repo := &mockContactRepository{
		saveFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			return errors.New("db write failed")
		},
	}
	ledger := &mockActivityService{}
	svc := NewContactService(repo, ledger)

	msg := &model.ContactMessage{Name: "n", Email: "e@e.com", Subject: "s", Message: "m"}
	if err := svc.Submit(context.Background(), msg, nil); err == nil {
		t.Fatal("expected error, got nil")
	}
	if len(ledger.recorded()) != 0 {
		t.Error("ledger must not be written when the primary mutation fails")
	}
}

// ---------------------------------------------------------------------------
// MarkAsRead tests
// ---------------------------------------------------------------------------

func TestContactService_MarkAsRead_Toggle(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &mockContactRepository{
		setReadFunc: func(ctx context.Context, _ string, read bool) (*model.ContactMessage, error) {
			status := model.StatusNew
			if read {
				status = model.StatusRead
			}
			return &model.ContactMessage{ID: id, Name: "Jane", Subject: "Hi", Read: read, Status: status}, nil
		},
	}
	ledger := &mockActivityService{}
	svc := NewContactService(repo, ledger)
	admin := &auth.User{Name: "Site Admin", Role: "ADMIN"}

	msg, err := svc.MarkAsRead(context.Background(), id.Hex(), true, admin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Status != model.StatusRead || !msg.Read {
		t.Errorf("expected read status, got %+v", msg)
	}

	msg, err = svc.MarkAsRead(context.Background(), id.Hex(), false, admin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Status != model.StatusNew || msg.Read {
		t.Errorf("expected new status after un-read, got %+v", msg)
	}

	got := ledger.recorded()
	if len(got) != 2 {
		t.Fatalf("expected 2 ledger events, got %d", len(got))
	}
	for _, in := range got {
		if in.Action != model.ActionMarkRead {
			t.Errorf("expected action mark_read, got %q", in.Action)
		}
	}
	if ledger.actors[0] != admin || ledger.actors[1] != admin {
		t.Error("expected both events attributed to the acting admin")
	}
}

func TestContactService_MarkAsRead_NotFound(t *testing.T) {
	repo := &mockContactRepository{
		setReadFunc: func(ctx context.Context, id string, read bool) (*model.ContactMessage, error) {
			return nil, errors.New("not found")
		},
	}
	ledger := &mockActivityService{}
	svc := NewContactService(repo, ledger)

	if _, err := svc.MarkAsRead(context.Background(), "missing", true, nil); err == nil {
		t.Fatal("expected error, got nil")
	}
	if len(ledger.recorded()) != 0 {
		t.Error("ledger must not be written when the mutation fails")
	}
}

// ---------------------------------------------------------------------------
// Reply tests
// ---------------------------------------------------------------------------

func TestContactService_Reply_SetsReplyFields(t *testing.T) {
	var gotContent, gotBy string
	repo := &mockContactRepository{
		setReplyFunc: func(ctx context.Context, id, content, by string, at time.Time) (*model.ContactMessage, error) {
			gotContent, gotBy = content, by
			return &model.ContactMessage{
				Subject: "Hi", Name: "Jane",
				Replied: true, Status: model.StatusReplied,
				ReplyContent: content, ReplyBy: by, ReplyDate: &at,
			}, nil
		},
	}
	ledger := &mockActivityService{}
	svc := NewContactService(repo, ledger)

	msg, err := svc.Reply(context.Background(), "id1", "Thanks!", "", &auth.User{Name: "Site Admin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotContent != "Thanks!" {
		t.Errorf("expected content forwarded, got %q", gotContent)
	}
	if gotBy != "Site Admin" {
		t.Errorf("expected reply attributed to session name, got %q", gotBy)
	}
	if msg.Status != model.StatusReplied || !msg.Replied {
		t.Errorf("expected replied status, got %+v", msg)
	}

	got := ledger.recorded()
	if len(got) != 1 || got[0].Action != model.ActionReply {
		t.Errorf("expected one reply ledger event, got %+v", got)
	}
}

func TestContactService_Reply_EmptyContent(t *testing.T) {
	svc := NewContactService(&mockContactRepository{}, &mockActivityService{})

	_, err := svc.Reply(context.Background(), "id1", "   ", "admin", nil)
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

// MarkAsReplied only toggles the flag and records nothing.
func TestContactService_MarkAsReplied_NoLedger(t *testing.T) {
	repo := &mockContactRepository{
		setRepliedFunc: func(ctx context.Context, id string, replied bool) (*model.ContactMessage, error) {
			return &model.ContactMessage{Replied: replied, Status: model.StatusNew}, nil
		},
	}
	ledger := &mockActivityService{}
	svc := NewContactService(repo, ledger)

	msg, err := svc.MarkAsReplied(context.Background(), "id1", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !msg.Replied {
		t.Error("expected replied flag set")
	}
	if msg.Status != model.StatusNew {
		t.Errorf("expected status unchanged, got %q", msg.Status)
	}
	if len(ledger.recorded()) != 0 {
		t.Error("MarkAsReplied must not write a ledger event")
	}
}

// ---------------------------------------------------------------------------
// Archive / SoftDelete tests
// ---------------------------------------------------------------------------

func TestContactService_Archive(t *testing.T) {
	var gotStatus string
	repo := &mockContactRepository{
		setStatusFunc: func(ctx context.Context, id, status string) (*model.ContactMessage, error) {
			gotStatus = status
			return &model.ContactMessage{Subject: "Hi", Name: "Jane", Status: status}, nil
		},
	}
	ledger := &mockActivityService{}
	svc := NewContactService(repo, ledger)

	if _, err := svc.Archive(context.Background(), "id1", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotStatus != model.StatusArchived {
		t.Errorf("expected archived status, got %q", gotStatus)
	}
	got := ledger.recorded()
	if len(got) != 1 || got[0].Action != model.ActionArchive {
		t.Errorf("expected one archive ledger event, got %+v", got)
	}
}

func TestContactService_SoftDelete_KeepsRecord(t *testing.T) {
	store := map[string]*model.ContactMessage{
		"id1": {Subject: "Hi", Name: "Jane", Status: model.StatusNew},
	}
	repo := &mockContactRepository{
		setStatusFunc: func(ctx context.Context, id, status string) (*model.ContactMessage, error) {
			msg, ok := store[id]
			if !ok {
				return nil, errors.New("not found")
			}
			msg.Status = status
			return msg, nil
		},
		findByIDFunc: func(ctx context.Context, id string) (*model.ContactMessage, error) {
			msg, ok := store[id]
			if !ok {
				return nil, errors.New("not found")
			}
			return msg, nil
		},
	}
	ledger := &mockActivityService{}
	svc := NewContactService(repo, ledger)

	if _, err := svc.SoftDelete(context.Background(), "id1", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg, err := svc.GetByID(context.Background(), "id1")
	if err != nil {
		t.Fatalf("record should still be readable after soft delete: %v", err)
	}
	if msg.Status != model.StatusDeleted {
		t.Errorf("expected status=deleted, got %q", msg.Status)
	}
	got := ledger.recorded()
	if len(got) != 1 || got[0].Action != model.ActionDelete {
		t.Errorf("expected one delete ledger event, got %+v", got)
	}
}

// A failed ledger append must not fail the transition.
func TestContactService_LedgerFailureTolerated(t *testing.T) {
	repo := &mockContactRepository{
		setStatusFunc: func(ctx context.Context, id, status string) (*model.ContactMessage, error) {
			return &model.ContactMessage{Subject: "Hi", Status: status}, nil
		},
	}
	ledger := &mockActivityService{recordErr: errors.New("ledger down")}
	svc := NewContactService(repo, ledger)

	msg, err := svc.Archive(context.Background(), "id1", nil)
	if err != nil {
		t.Fatalf("ledger failure must not fail the transition: %v", err)
	}
	if msg.Status != model.StatusArchived {
		t.Errorf("expected archived status, got %q", msg.Status)
	}
}

// ---------------------------------------------------------------------------
// Tag / priority tests
// ---------------------------------------------------------------------------

func TestContactService_SetPriority(t *testing.T) {
	var gotPriority string
	repo := &mockContactRepository{
		setPriorityFunc: func(ctx context.Context, id, priority string) (*model.ContactMessage, error) {
			gotPriority = priority
			return &model.ContactMessage{Priority: priority}, nil
		},
	}
	svc := NewContactService(repo, &mockActivityService{})

	msg, err := svc.SetPriority(context.Background(), "id1", model.PriorityHigh)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPriority != model.PriorityHigh || msg.Priority != model.PriorityHigh {
		t.Errorf("expected priority high, got %q", msg.Priority)
	}

	// Repeating the call is a no-op in effect.
	msg, err = svc.SetPriority(context.Background(), "id1", model.PriorityHigh)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Priority != model.PriorityHigh {
		t.Errorf("expected priority still high, got %q", msg.Priority)
	}
}

func TestContactService_SetPriority_Invalid(t *testing.T) {
	svc := NewContactService(&mockContactRepository{
		setPriorityFunc: func(ctx context.Context, id, priority string) (*model.ContactMessage, error) {
			t.Error("repository must not be called for invalid priority")
			return nil, nil
		},
	}, &mockActivityService{})

	_, err := svc.SetPriority(context.Background(), "id1", "urgent")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestContactService_AddTag_Empty(t *testing.T) {
	svc := NewContactService(&mockContactRepository{}, &mockActivityService{})

	_, err := svc.AddTag(context.Background(), "id1", "  ")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// CountByStatus tests
// ---------------------------------------------------------------------------

func TestContactService_CountByStatus(t *testing.T) {
	want := &model.ContactStatusCounts{
		All: 6, New: 2, Read: 1, Replied: 1, Archived: 1, Deleted: 1, Unread: 3,
	}
	svc := NewContactService(&mockContactRepository{
		countByStatusFunc: func(ctx context.Context) (*model.ContactStatusCounts, error) {
			return want, nil
		},
	}, &mockActivityService{})

	got, err := svc.CountByStatus(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *got != *want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}
