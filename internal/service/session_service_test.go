package service

import (
	"context"
	"testing"
	"time"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ---------------------------------------------------------------------------
// Mock SessionRepository / UserRepository
// ---------------------------------------------------------------------------

type mockSessionRepository struct {
	createFunc         func(ctx context.Context, s *model.Session) error
	findByTokenFunc    func(ctx context.Context, token string) (*model.Session, error)
	deleteByTokenFunc  func(ctx context.Context, token string) error
	deleteByUserIDFunc func(ctx context.Context, userID string) error
}

func (m *mockSessionRepository) Create(ctx context.Context, s *model.Session) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, s)
	}
	return nil
}
func (m *mockSessionRepository) FindByToken(ctx context.Context, token string) (*model.Session, error) {
	if m.findByTokenFunc != nil {
		return m.findByTokenFunc(ctx, token)
	}
	return nil, repository.ErrNotFound
}
func (m *mockSessionRepository) DeleteByToken(ctx context.Context, token string) error {
	if m.deleteByTokenFunc != nil {
		return m.deleteByTokenFunc(ctx, token)
	}
	return nil
}
func (m *mockSessionRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if m.deleteByUserIDFunc != nil {
		return m.deleteByUserIDFunc(ctx, userID)
	}
	return nil
}

type mockUserRepository struct {
	createFunc      func(ctx context.Context, u *model.User) error
	findByEmailFunc func(ctx context.Context, email string) (*model.User, error)
	findByIDFunc    func(ctx context.Context, id string) (*model.User, error)
	countFunc       func(ctx context.Context) (int64, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *model.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, u)
	}
	return nil
}
func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, repository.ErrNotFound
}
func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}
func (m *mockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

// ---------------------------------------------------------------------------
// CreateSession tests
// ---------------------------------------------------------------------------

func TestSessionService_CreateSession(t *testing.T) {
	var saved *model.Session
	sessions := &mockSessionRepository{
		createFunc: func(ctx context.Context, s *model.Session) error {
			saved = s
			return nil
		},
	}
	svc := NewSessionService(sessions, &mockUserRepository{})
	user := &model.User{ID: primitive.NewObjectID(), Email: "admin@example.com"}

	session, err := svc.CreateSession(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil || saved.Token != session.Token {
		t.Fatal("expected session to be persisted")
	}
	if session.Token == "" {
		t.Error("expected a non-empty token")
	}
	if session.UserID != user.ID {
		t.Errorf("expected session bound to user, got %s", session.UserID.Hex())
	}
	if !session.ExpiresAt.After(session.CreatedAt) {
		t.Error("expected expiry after creation time")
	}
}

func TestSessionService_CreateSession_UniqueTokens(t *testing.T) {
	svc := NewSessionService(&mockSessionRepository{}, &mockUserRepository{})
	user := &model.User{ID: primitive.NewObjectID()}

	a, err := svc.CreateSession(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := svc.CreateSession(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Token == b.Token {
		t.Error("expected distinct tokens for distinct sessions")
	}
}

// ---------------------------------------------------------------------------
// Identify tests
// ---------------------------------------------------------------------------

func TestSessionService_Identify(t *testing.T) {
	userID := primitive.NewObjectID()
	sessions := &mockSessionRepository{
		findByTokenFunc: func(ctx context.Context, token string) (*model.Session, error) {
			return &model.Session{
				Token:     token,
				UserID:    userID,
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil
		},
	}
	users := &mockUserRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.User, error) {
			if id != userID.Hex() {
				t.Errorf("expected lookup by session user id, got %q", id)
			}
			return &model.User{ID: userID, Name: "Site Admin", Role: model.RoleAdmin}, nil
		},
	}
	svc := NewSessionService(sessions, users)

	u, err := svc.Identify(context.Background(), "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != userID.Hex() || u.Name != "Site Admin" || u.Role != model.RoleAdmin {
		t.Errorf("unexpected identity: %+v", u)
	}
}

func TestSessionService_Identify_UnknownToken(t *testing.T) {
	svc := NewSessionService(&mockSessionRepository{}, &mockUserRepository{})

	if _, err := svc.Identify(context.Background(), "bogus"); err == nil {
		t.Fatal("expected error for unknown token")
	}
}

func TestSessionService_Identify_ExpiredSessionDeleted(t *testing.T) {
	deleted := ""
	sessions := &mockSessionRepository{
		findByTokenFunc: func(ctx context.Context, token string) (*model.Session, error) {
			return &model.Session{
				Token:     token,
				UserID:    primitive.NewObjectID(),
				ExpiresAt: time.Now().Add(-time.Minute),
			}, nil
		},
		deleteByTokenFunc: func(ctx context.Context, token string) error {
			deleted = token
			return nil
		},
	}
	svc := NewSessionService(sessions, &mockUserRepository{})

	if _, err := svc.Identify(context.Background(), "stale"); err == nil {
		t.Fatal("expected error for expired session")
	}
	if deleted != "stale" {
		t.Errorf("expected expired session deleted, got %q", deleted)
	}
}

func TestSessionService_Identify_MissingUser(t *testing.T) {
	sessions := &mockSessionRepository{
		findByTokenFunc: func(ctx context.Context, token string) (*model.Session, error) {
			return &model.Session{
				Token:     token,
				UserID:    primitive.NewObjectID(),
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil
		},
	}
	svc := NewSessionService(sessions, &mockUserRepository{})

	if _, err := svc.Identify(context.Background(), "orphan"); err == nil {
		t.Fatal("expected error when the session's user is gone")
	}
}

// ---------------------------------------------------------------------------
// Delete tests
// ---------------------------------------------------------------------------

func TestSessionService_DeleteSession(t *testing.T) {
	deleted := ""
	sessions := &mockSessionRepository{
		deleteByTokenFunc: func(ctx context.Context, token string) error {
			deleted = token
			return nil
		},
	}
	svc := NewSessionService(sessions, &mockUserRepository{})

	if err := svc.DeleteSession(context.Background(), "tok"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != "tok" {
		t.Errorf("expected token forwarded, got %q", deleted)
	}
}
