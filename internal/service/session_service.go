package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
	"github.com/devfolio/backend/pkg/auth"
)

// SessionService manages DB-backed login sessions and resolves tokens to
// authenticated users. Implements auth.SessionValidator.
type SessionService struct {
	sessions repository.SessionRepository
	users    repository.UserRepository
}

// NewSessionService creates a SessionService.
func NewSessionService(sessions repository.SessionRepository, users repository.UserRepository) *SessionService {
	return &SessionService{sessions: sessions, users: users}
}

// CreateSession generates a new opaque token, stores it, and returns the
// session.
func (s *SessionService) CreateSession(ctx context.Context, user *model.User) (*model.Session, error) {
	token, err := auth.GenerateSessionToken()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	session := &model.Session{
		Token:     token,
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(auth.SessionDuration),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	slog.Info("session created", "user", user.Email, "expires_at", session.ExpiresAt)
	return session, nil
}

// Identify validates a session token and returns the authenticated user.
// Expired sessions are deleted on sight. Implements auth.SessionValidator.
func (s *SessionService) Identify(ctx context.Context, token string) (*auth.User, error) {
	session, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		return nil, errors.New("invalid_session")
	}
	if time.Now().After(session.ExpiresAt) {
		_ = s.sessions.DeleteByToken(ctx, token)
		return nil, errors.New("session_expired")
	}

	user, err := s.users.FindByID(ctx, session.UserID.Hex())
	if err != nil {
		return nil, errors.New("invalid_session")
	}
	return &auth.User{ID: user.ID.Hex(), Name: user.Name, Role: user.Role}, nil
}

// DeleteSession removes a session (logout).
func (s *SessionService) DeleteSession(ctx context.Context, token string) error {
	return s.sessions.DeleteByToken(ctx, token)
}

// DeleteAllSessions removes all sessions for a user (forced logout).
func (s *SessionService) DeleteAllSessions(ctx context.Context, userID string) error {
	return s.sessions.DeleteByUserID(ctx, userID)
}
