package booking

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/sibaproject/siba-gateway/internal/room"
	"github.com/sibaproject/siba-gateway/internal/session"
)

// Remote is the slice of the upstream API the booking service talks to.
type Remote interface {
	ListBookings(ctx context.Context, token string) ([]Booking, error)
	ListUserBookings(ctx context.Context, token string) ([]Booking, error)
	GetBooking(ctx context.Context, token string, id int64) (*Booking, error)
	CreateBooking(ctx context.Context, token string, in Input) (*Booking, error)
	UpdateBooking(ctx context.Context, token string, id int64, in Input) (*Booking, error)
	DeleteBooking(ctx context.Context, token string, id int64) error
}

// RoomLister resolves room ids to catalog entries, used to recognize a
// conference-room booking for the admin handoff.
type RoomLister interface {
	ListRooms(ctx context.Context, token string) ([]room.Room, error)
}

// Service defines booking operations offered to the views. Every method
// takes the caller's session: the token goes out with the upstream call
// and the role picks the right listing endpoint.
type Service interface {
	// ListAll returns the shared booking collection driving the calendar.
	ListAll(ctx context.Context, sess *session.Session) ([]Booking, error)
	// ListForViewer returns all bookings for admins and only the
	// caller's own otherwise.
	ListForViewer(ctx context.Context, sess *session.Session) ([]Booking, error)
	Get(ctx context.Context, sess *session.Session, id int64) (*Booking, error)
	// Create validates and submits a booking. The second return value is
	// a prefilled WhatsApp URL for the admin handoff when the conference
	// room was booked; empty otherwise.
	Create(ctx context.Context, sess *session.Session, in Input) (*Booking, string, error)
	Update(ctx context.Context, sess *session.Session, id int64, in Input) (*Booking, error)
	Delete(ctx context.Context, sess *session.Session, id int64) error
}

type service struct {
	remote Remote
	rooms  RoomLister

	adminWhatsApp string
}

// NewService creates a new booking Service. adminWhatsApp may be empty,
// which disables the conference-room handoff.
func NewService(remote Remote, rooms RoomLister, adminWhatsApp string) Service {
	return &service{
		remote:        remote,
		rooms:         rooms,
		adminWhatsApp: adminWhatsApp,
	}
}

func (s *service) ListAll(ctx context.Context, sess *session.Session) ([]Booking, error) {
	return s.remote.ListBookings(ctx, sess.Token)
}

func (s *service) ListForViewer(ctx context.Context, sess *session.Session) ([]Booking, error) {
	if sess.IsAdmin() {
		return s.remote.ListBookings(ctx, sess.Token)
	}
	return s.remote.ListUserBookings(ctx, sess.Token)
}

func (s *service) Get(ctx context.Context, sess *session.Session, id int64) (*Booking, error) {
	return s.remote.GetBooking(ctx, sess.Token, id)
}

// validateInput enforces the form's required-field rule before anything
// is sent upstream.
func validateInput(in Input) error {
	switch {
	case in.RoomID == 0,
		strings.TrimSpace(in.StartDate) == "",
		strings.TrimSpace(in.EndDate) == "",
		strings.TrimSpace(in.StartTime) == "",
		strings.TrimSpace(in.EndTime) == "",
		in.ParticipantCount == 0,
		strings.TrimSpace(in.EventName) == "",
		strings.TrimSpace(in.Description) == "",
		strings.TrimSpace(in.PenanggungJawab) == "":
		return ErrMissingFields
	case in.ParticipantCount < 0:
		return ErrBadCount
	}
	return nil
}

func (s *service) Create(ctx context.Context, sess *session.Session, in Input) (*Booking, string, error) {
	if err := validateInput(in); err != nil {
		return nil, "", err
	}

	created, err := s.remote.CreateBooking(ctx, sess.Token, in)
	if err != nil {
		return nil, "", err
	}

	return created, s.handoffURL(ctx, sess.Token, created, in), nil
}

func (s *service) Update(ctx context.Context, sess *session.Session, id int64, in Input) (*Booking, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return s.remote.UpdateBooking(ctx, sess.Token, id, in)
}

func (s *service) Delete(ctx context.Context, sess *session.Session, id int64) error {
	return s.remote.DeleteBooking(ctx, sess.Token, id)
}

// handoffURL builds the WhatsApp notification link sent back to the
// client after a conference-room booking, so the admin can confirm the
// meeting link out of band. Best effort: failures only suppress the link.
func (s *service) handoffURL(ctx context.Context, token string, created *Booking, in Input) string {
	if s.adminWhatsApp == "" {
		return ""
	}

	roomName := created.Room.Name
	if roomName == "" {
		rooms, err := s.rooms.ListRooms(ctx, token)
		if err != nil {
			return ""
		}
		for _, r := range rooms {
			if r.ID == in.RoomID {
				roomName = r.Name
				break
			}
		}
	}
	if roomName != room.TypeConference {
		return ""
	}

	msg := fmt.Sprintf(
		"Assalamualaikum Admin, Booking ZOOM MEETING\n\nEvent Name: %s\nStart Date: %s\nEnd Date: %s\nStart Time: %s\nEnd Time: %s\nPenanggung Jawab: %s",
		in.EventName, in.StartDate, in.EndDate, in.StartTime, in.EndTime, in.PenanggungJawab,
	)
	return "https://wa.me/" + s.adminWhatsApp + "?text=" + url.QueryEscape(msg)
}
