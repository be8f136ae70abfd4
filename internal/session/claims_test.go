package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestRoleFromToken(t *testing.T) {
	t.Run("admin claim", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"role": "admin"})
		assert.Equal(t, RoleAdmin, RoleFromToken(token))
	})

	t.Run("user claim", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"role": "user"})
		assert.Equal(t, RoleUser, RoleFromToken(token))
	})

	t.Run("missing claim defaults to user", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"sub": "42"})
		assert.Equal(t, RoleUser, RoleFromToken(token))
	})

	t.Run("undecodable token defaults to user", func(t *testing.T) {
		assert.Equal(t, RoleUser, RoleFromToken("not.a.token"))
	})
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2025, time.June, 2, 12, 0, 0, 0, time.UTC)

	t.Run("future exp", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()})
		assert.False(t, TokenExpired(token, now))
	})

	t.Run("past exp", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"exp": now.Add(-time.Hour).Unix()})
		assert.True(t, TokenExpired(token, now))
	})

	t.Run("no exp claim never expires", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"role": "user"})
		assert.False(t, TokenExpired(token, now))
	})

	t.Run("undecodable token counts as expired", func(t *testing.T) {
		assert.True(t, TokenExpired("garbage", now))
	})
}
