package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service manages the session lifecycle: created at login, resolved on
// every request, cleared at logout or when the upstream rejects the token.
type Service interface {
	Create(ctx context.Context, token string, user Profile) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	PurgeExpired(ctx context.Context) (int64, error)
}

type service struct {
	repo Repository
	ttl  time.Duration
}

// NewService creates a new session Service.
func NewService(repo Repository, ttl time.Duration) Service {
	return &service{
		repo: repo,
		ttl:  ttl,
	}
}

func (s *service) Create(ctx context.Context, token string, user Profile) (*Session, error) {
	now := time.Now().UTC()

	sess := &Session{
		ID:        uuid.NewString(),
		Token:     token,
		User:      user,
		Role:      RoleFromToken(token),
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.repo.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return sess, nil
}

func (s *service) Get(ctx context.Context, id string) (*Session, error) {
	sess, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if time.Now().UTC().After(sess.ExpiresAt) {
		// Best effort cleanup; the caller only needs to know it is gone.
		_ = s.repo.Delete(ctx, id)
		return nil, ErrExpired
	}

	return sess, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) PurgeExpired(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpired(ctx, time.Now().UTC())
}
