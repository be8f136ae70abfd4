package room

import (
	"context"

	"github.com/sibaproject/siba-gateway/internal/session"
)

// Remote is the slice of the upstream API the room service uses.
type Remote interface {
	ListRooms(ctx context.Context, token string) ([]Room, error)
}

// Service serves the room catalog. Rooms are fetched fresh per call;
// the catalog is small and owned by the upstream.
type Service interface {
	List(ctx context.Context, sess *session.Session) ([]Room, error)
}

type service struct {
	remote Remote
}

// NewService creates a new room Service.
func NewService(remote Remote) Service {
	return &service{remote: remote}
}

func (s *service) List(ctx context.Context, sess *session.Session) ([]Room, error) {
	return s.remote.ListRooms(ctx, sess.Token)
}
