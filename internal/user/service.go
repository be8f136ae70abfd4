package user

import (
	"context"
	"strings"

	"github.com/sibaproject/siba-gateway/internal/session"
)

// Remote is the slice of the upstream API the user service uses.
// All of it is admin-gated upstream.
type Remote interface {
	ListUsers(ctx context.Context, token string) ([]User, error)
	GetUser(ctx context.Context, token string, id int64) (*User, error)
	UpdateUser(ctx context.Context, token string, id int64, in UpdateInput) (*User, error)
	DeleteUser(ctx context.Context, token string, id int64) error
}

// Service defines the admin account-management operations.
type Service interface {
	// List returns all accounts, optionally filtered by a case
	// insensitive search over name, email and role.
	List(ctx context.Context, sess *session.Session, query string) ([]User, error)
	Get(ctx context.Context, sess *session.Session, id int64) (*User, error)
	Update(ctx context.Context, sess *session.Session, id int64, in UpdateInput) (*User, error)
	Delete(ctx context.Context, sess *session.Session, id int64) error
}

type service struct {
	remote Remote
}

// NewService creates a new user Service.
func NewService(remote Remote) Service {
	return &service{remote: remote}
}

func (s *service) List(ctx context.Context, sess *session.Session, query string) ([]User, error) {
	users, err := s.remote.ListUsers(ctx, sess.Token)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return users, nil
	}

	var filtered []User
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), query) ||
			strings.Contains(strings.ToLower(u.Email), query) ||
			strings.Contains(strings.ToLower(u.Role), query) {
			filtered = append(filtered, u)
		}
	}
	return filtered, nil
}

func (s *service) Get(ctx context.Context, sess *session.Session, id int64) (*User, error) {
	return s.remote.GetUser(ctx, sess.Token, id)
}

func (s *service) Update(ctx context.Context, sess *session.Session, id int64, in UpdateInput) (*User, error) {
	return s.remote.UpdateUser(ctx, sess.Token, id, in)
}

func (s *service) Delete(ctx context.Context, sess *session.Session, id int64) error {
	return s.remote.DeleteUser(ctx, sess.Token, id)
}
