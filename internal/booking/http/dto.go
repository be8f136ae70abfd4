package http

import (
	"time"

	"github.com/sibaproject/siba-gateway/internal/availability"
	"github.com/sibaproject/siba-gateway/internal/booking"
	"github.com/sibaproject/siba-gateway/internal/session"
)

// RoomTag is the denormalized room carried on a booking.
type RoomTag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// BookingResponse is a booking as rendered for the views, with the
// affordance flags the cards need.
type BookingResponse struct {
	ID               int64   `json:"id"`
	Room             RoomTag `json:"room"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	StartTime        string  `json:"start_time"`
	EndTime          string  `json:"end_time"`
	ParticipantCount int     `json:"participant_count"`
	EventName        string  `json:"event_name"`
	Description      string  `json:"description"`
	PenanggungJawab  string  `json:"penanggung_jawab"`
	UserID           int64   `json:"user_id"`
	Status           string  `json:"status"`
	Past             bool    `json:"past"`
	CanModify        bool    `json:"can_modify"`
}

// NewBookingResponse converts a domain booking, computing the past and
// can-modify flags for the viewing session.
func NewBookingResponse(b booking.Booking, sess *session.Session, now time.Time) BookingResponse {
	status := b.Status
	if status == "" {
		status = booking.StatusUnknown
	}

	past := availability.IsPastBooking(b, now)
	isOwner := sess != nil && sess.User.ID == b.UserID
	isAdmin := sess != nil && sess.IsAdmin()

	return BookingResponse{
		ID:               b.ID,
		Room:             RoomTag{ID: b.Room.ID, Name: b.Room.Name, Type: b.Room.Type},
		StartDate:        b.StartDate,
		EndDate:          b.EndDate,
		StartTime:        b.StartTime,
		EndTime:          b.EndTime,
		ParticipantCount: b.ParticipantCount,
		EventName:        b.EventName,
		Description:      b.Description,
		PenanggungJawab:  b.PenanggungJawab,
		UserID:           b.UserID,
		Status:           string(status),
		Past:             past,
		CanModify:        (isOwner || isAdmin) && !past,
	}
}

// SaveBookingRequest is the create/update payload. Field presence is
// validated by the service so the form gets one consistent error.
type SaveBookingRequest struct {
	RoomID           int64  `json:"room_id"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	StartTime        string `json:"start_time"`
	EndTime          string `json:"end_time"`
	ParticipantCount int    `json:"participant_count"`
	EventName        string `json:"event_name"`
	Description      string `json:"description"`
	PenanggungJawab  string `json:"penanggung_jawab"`
}

func (r SaveBookingRequest) toInput() booking.Input {
	return booking.Input{
		RoomID:           r.RoomID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		StartTime:        r.StartTime,
		EndTime:          r.EndTime,
		ParticipantCount: r.ParticipantCount,
		EventName:        r.EventName,
		Description:      r.Description,
		PenanggungJawab:  r.PenanggungJawab,
	}
}

// CreateBookingResponse wraps the created booking with the optional
// conference-room handoff link.
type CreateBookingResponse struct {
	Booking    BookingResponse `json:"booking"`
	HandoffURL string          `json:"handoff_url,omitempty"`
}
