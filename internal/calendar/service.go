package calendar

import (
	"context"
	"time"

	"github.com/sibaproject/siba-gateway/internal/booking"
	"github.com/sibaproject/siba-gateway/internal/room"
	"github.com/sibaproject/siba-gateway/internal/session"
)

// BookingSource provides the booking collection the calendar aggregates.
type BookingSource interface {
	ListAll(ctx context.Context, sess *session.Session) ([]booking.Booking, error)
}

// RoomSource provides the room catalog.
type RoomSource interface {
	List(ctx context.Context, sess *session.Session) ([]room.Room, error)
}

// Service fetches bookings and rooms and runs the pure builders over
// them. Each call fetches fresh: views own their snapshot, nothing is
// cached across requests.
type Service interface {
	Month(ctx context.Context, sess *session.Session, ref time.Time) ([]DayCell, error)
	Day(ctx context.Context, sess *session.Session, day time.Time) (*DayDetail, error)
	RoomsForDate(ctx context.Context, sess *session.Session, day time.Time) ([]room.Room, error)
}

type service struct {
	bookings BookingSource
	rooms    RoomSource
	now      func() time.Time
}

// NewService creates a new calendar Service.
func NewService(bookings BookingSource, rooms RoomSource) Service {
	return &service{
		bookings: bookings,
		rooms:    rooms,
		now:      time.Now,
	}
}

func (s *service) fetch(ctx context.Context, sess *session.Session) ([]booking.Booking, []room.Room, error) {
	all, err := s.bookings.ListAll(ctx, sess)
	if err != nil {
		return nil, nil, err
	}
	catalog, err := s.rooms.List(ctx, sess)
	if err != nil {
		return nil, nil, err
	}
	return all, catalog, nil
}

func (s *service) Month(ctx context.Context, sess *session.Session, ref time.Time) ([]DayCell, error) {
	all, catalog, err := s.fetch(ctx, sess)
	if err != nil {
		return nil, err
	}
	return BuildMonth(all, catalog, ref, s.now()), nil
}

func (s *service) Day(ctx context.Context, sess *session.Session, day time.Time) (*DayDetail, error) {
	all, catalog, err := s.fetch(ctx, sess)
	if err != nil {
		return nil, err
	}
	detail := BuildDay(all, catalog, day, s.now())
	return &detail, nil
}

func (s *service) RoomsForDate(ctx context.Context, sess *session.Session, day time.Time) ([]room.Room, error) {
	all, catalog, err := s.fetch(ctx, sess)
	if err != nil {
		return nil, err
	}
	return SelectableRooms(all, catalog, day), nil
}
