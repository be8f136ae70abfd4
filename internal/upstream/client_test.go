package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sibaproject/siba-gateway/internal/booking"
	"github.com/sibaproject/siba-gateway/internal/pkg/apperror"
)

func signTestToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"role": "user"}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestClientAuthorizationHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"rooms": []}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	ctx := context.Background()

	t.Run("valid token is attached as bearer", func(t *testing.T) {
		token := signTestToken(t, time.Now().Add(time.Hour))
		_, err := client.ListRooms(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "Bearer "+token, gotAuth)
	})

	t.Run("expired token is left off entirely", func(t *testing.T) {
		token := signTestToken(t, time.Now().Add(-time.Hour))
		_, err := client.ListRooms(ctx, token)
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})

	t.Run("empty token goes unauthenticated", func(t *testing.T) {
		_, err := client.ListRooms(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})
}

func TestClientErrorMapping(t *testing.T) {
	ctx := context.Background()

	respond := func(status int, body string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}))
	}

	t.Run("401 maps to session expired", func(t *testing.T) {
		srv := respond(http.StatusUnauthorized, `{"message": "jwt expired"}`)
		defer srv.Close()

		_, err := NewClient(srv.URL, time.Second).ListRooms(ctx, "")
		assert.ErrorIs(t, err, ErrSessionExpired)
	})

	t.Run("403 maps to forbidden", func(t *testing.T) {
		srv := respond(http.StatusForbidden, `{"message": "admins only"}`)
		defer srv.Close()

		_, err := NewClient(srv.URL, time.Second).ListRooms(ctx, "")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("other statuses carry the upstream message", func(t *testing.T) {
		srv := respond(http.StatusConflict, `{"message": "room already booked"}`)
		defer srv.Close()

		_, err := NewClient(srv.URL, time.Second).GetBooking(ctx, "", 1)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusConflict, appErr.Code)
		assert.Equal(t, "room already booked", appErr.Message)
	})

	t.Run("error key is the fallback message field", func(t *testing.T) {
		srv := respond(http.StatusBadRequest, `{"error": "invalid body"}`)
		defer srv.Close()

		_, err := NewClient(srv.URL, time.Second).GetBooking(ctx, "", 1)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "invalid body", appErr.Message)
	})

	t.Run("unreachable server", func(t *testing.T) {
		srv := respond(http.StatusOK, `{}`)
		srv.Close() // nothing listening anymore

		_, err := NewClient(srv.URL, time.Second).ListRooms(ctx, "")
		assert.ErrorIs(t, err, ErrUnreachable)
	})
}

func TestClientDecoding(t *testing.T) {
	ctx := context.Background()

	t.Run("booking envelope is unwrapped", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/bookings/42", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"booking": {"id": 42, "eventName": "Town Hall"}}`))
		}))
		defer srv.Close()

		got, err := NewClient(srv.URL, time.Second).GetBooking(ctx, "", 42)
		require.NoError(t, err)
		assert.Equal(t, int64(42), got.ID)
		assert.Equal(t, "Town Hall", got.EventName)
	})

	t.Run("list endpoints decode plain arrays", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/bookings", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id": 1}, {"id": 2}]`))
		}))
		defer srv.Close()

		got, err := NewClient(srv.URL, time.Second).ListBookings(ctx, "")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, []booking.Booking{{ID: 1}, {ID: 2}}, got)
	})
}
