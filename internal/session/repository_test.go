package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) Repository {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db)
}

func testSession(id string, expiresAt time.Time) *Session {
	return &Session{
		ID:    id,
		Token: "token-" + id,
		User: Profile{
			ID:    7,
			Name:  "Test User",
			Email: "test@example.com",
		},
		Role:      RoleUser,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		ExpiresAt: expiresAt.UTC().Truncate(time.Second),
	}
}

func TestSQLiteRepository(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	t.Run("create and get round trip", func(t *testing.T) {
		want := testSession("abc", time.Now().Add(time.Hour))
		require.NoError(t, repo.Create(ctx, want))

		got, err := repo.GetByID(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, want.Token, got.Token)
		assert.Equal(t, want.User, got.User)
		assert.Equal(t, want.Role, got.Role)
		assert.True(t, want.ExpiresAt.Equal(got.ExpiresAt))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, testSession("gone", time.Now().Add(time.Hour))))
		require.NoError(t, repo.Delete(ctx, "gone"))

		_, err := repo.GetByID(ctx, "gone")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete expired keeps live sessions", func(t *testing.T) {
		now := time.Now()
		require.NoError(t, repo.Create(ctx, testSession("old", now.Add(-time.Hour))))
		require.NoError(t, repo.Create(ctx, testSession("live", now.Add(time.Hour))))

		deleted, err := repo.DeleteExpired(ctx, now)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, deleted, int64(1))

		_, err = repo.GetByID(ctx, "old")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = repo.GetByID(ctx, "live")
		assert.NoError(t, err)
	})
}

func TestServiceLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	svc := NewService(repo, time.Hour)

	t.Run("create assigns id and role", func(t *testing.T) {
		sess, err := svc.Create(ctx, "opaque-token", Profile{ID: 1, Name: "A", Email: "a@example.com"})
		require.NoError(t, err)
		assert.NotEmpty(t, sess.ID)
		assert.Equal(t, RoleUser, sess.Role)
		assert.True(t, sess.ExpiresAt.After(sess.CreatedAt))

		got, err := svc.Get(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, "opaque-token", got.Token)
	})

	t.Run("expired session is purged on access", func(t *testing.T) {
		short := NewService(repo, -time.Minute)
		sess, err := short.Create(ctx, "stale", Profile{ID: 2})
		require.NoError(t, err)

		_, err = svc.Get(ctx, sess.ID)
		assert.ErrorIs(t, err, ErrExpired)

		// A second access finds nothing at all.
		_, err = svc.Get(ctx, sess.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		sess, err := svc.Create(ctx, "bye", Profile{ID: 3})
		require.NoError(t, err)
		require.NoError(t, svc.Delete(ctx, sess.ID))
		assert.NoError(t, svc.Delete(ctx, sess.ID))
	})
}
