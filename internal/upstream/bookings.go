package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sibaproject/siba-gateway/internal/booking"
)

// ListBookings fetches the full booking collection (the upstream scopes
// it by caller role).
func (c *Client) ListBookings(ctx context.Context, token string) ([]booking.Booking, error) {
	var out []booking.Booking
	if err := c.do(ctx, http.MethodGet, "/api/bookings", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListUserBookings fetches only the caller's own bookings.
func (c *Client) ListUserBookings(ctx context.Context, token string) ([]booking.Booking, error) {
	var out []booking.Booking
	if err := c.do(ctx, http.MethodGet, "/api/bookings/user", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// bookingEnvelope wraps single-booking responses ({"booking": {...}}).
type bookingEnvelope struct {
	Booking booking.Booking `json:"booking"`
}

// GetBooking fetches one booking by id.
func (c *Client) GetBooking(ctx context.Context, token string, id int64) (*booking.Booking, error) {
	var out bookingEnvelope
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/bookings/%d", id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out.Booking, nil
}

// CreateBooking submits a new booking.
func (c *Client) CreateBooking(ctx context.Context, token string, in booking.Input) (*booking.Booking, error) {
	var out booking.Booking
	if err := c.do(ctx, http.MethodPost, "/api/bookings", token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateBooking replaces a booking's editable fields.
func (c *Client) UpdateBooking(ctx context.Context, token string, id int64, in booking.Input) (*booking.Booking, error) {
	var out booking.Booking
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/bookings/%d", id), token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteBooking removes a booking.
func (c *Client) DeleteBooking(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/bookings/%d", id), token, nil, nil)
}
