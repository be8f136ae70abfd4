package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sibaproject/siba-gateway/internal/booking"
	"github.com/sibaproject/siba-gateway/internal/session"
)

func TestNewBookingResponse(t *testing.T) {
	now := time.Date(2025, time.June, 2, 12, 0, 0, 0, time.Local)
	owner := &session.Session{Role: session.RoleUser, User: session.Profile{ID: 7}}
	admin := &session.Session{Role: session.RoleAdmin, User: session.Profile{ID: 1}}
	other := &session.Session{Role: session.RoleUser, User: session.Profile{ID: 8}}

	upcoming := booking.Booking{
		ID: 1, UserID: 7,
		StartDate: "2025-06-03", EndDate: "2025-06-03",
		StartTime: "09:00", EndTime: "11:00",
		Status: booking.StatusApproved,
	}
	past := booking.Booking{
		ID: 2, UserID: 7,
		StartDate: "2025-06-01", EndDate: "2025-06-01",
		StartTime: "09:00", EndTime: "11:00",
		Status: booking.StatusApproved,
	}

	t.Run("owner can modify an upcoming booking", func(t *testing.T) {
		resp := NewBookingResponse(upcoming, owner, now)
		assert.False(t, resp.Past)
		assert.True(t, resp.CanModify)
	})

	t.Run("nobody can modify a past booking", func(t *testing.T) {
		assert.False(t, NewBookingResponse(past, owner, now).CanModify)
		assert.False(t, NewBookingResponse(past, admin, now).CanModify)
	})

	t.Run("admin can modify anyone's upcoming booking", func(t *testing.T) {
		assert.True(t, NewBookingResponse(upcoming, admin, now).CanModify)
	})

	t.Run("other users cannot modify", func(t *testing.T) {
		assert.False(t, NewBookingResponse(upcoming, other, now).CanModify)
	})

	t.Run("empty status renders as unknown", func(t *testing.T) {
		b := upcoming
		b.Status = ""
		assert.Equal(t, "unknown", NewBookingResponse(b, owner, now).Status)
	})

	t.Run("snake case wire shape", func(t *testing.T) {
		resp := NewBookingResponse(upcoming, owner, now)
		assert.Equal(t, "2025-06-03", resp.StartDate)
		assert.Equal(t, "09:00", resp.StartTime)
	})
}
