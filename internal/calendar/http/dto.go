package http

import (
	"time"

	bookingHttp "github.com/sibaproject/siba-gateway/internal/booking/http"
	"github.com/sibaproject/siba-gateway/internal/calendar"
	"github.com/sibaproject/siba-gateway/internal/session"
)

// DayCellResponse is one rendered cell of the month grid.
type DayCellResponse struct {
	Date            string   `json:"date"`
	Weekday         string   `json:"weekday"`
	Today           bool     `json:"today"`
	BookingCount    int      `json:"booking_count"`
	FullBookedRooms []string `json:"full_booked_rooms"`
	Label           string   `json:"label,omitempty"`
	LabelSeverity   string   `json:"label_severity,omitempty"`
	CanCreate       bool     `json:"can_create"`
}

func NewDayCellResponse(cell calendar.DayCell) DayCellResponse {
	rooms := cell.FullBookedRooms
	if rooms == nil {
		rooms = []string{}
	}

	return DayCellResponse{
		Date:            cell.Date,
		Weekday:         cell.Weekday.String(),
		Today:           cell.Today,
		BookingCount:    cell.BookingCount,
		FullBookedRooms: rooms,
		Label:           cell.Label,
		LabelSeverity:   string(cell.LabelSeverity),
		CanCreate:       cell.CanCreate,
	}
}

// MonthResponse is the full month view.
type MonthResponse struct {
	Month string            `json:"month"`
	Days  []DayCellResponse `json:"days"`
}

// DayDetailResponse is the selected-day side panel.
type DayDetailResponse struct {
	Date            string                        `json:"date"`
	Bookings        []bookingHttp.BookingResponse `json:"bookings"`
	FullBookedRooms []string                      `json:"full_booked_rooms"`
	CanCreate       bool                          `json:"can_create"`
}

func NewDayDetailResponse(detail *calendar.DayDetail, sess *session.Session, now time.Time) DayDetailResponse {
	bookings := make([]bookingHttp.BookingResponse, 0, len(detail.Bookings))
	for _, b := range detail.Bookings {
		bookings = append(bookings, bookingHttp.NewBookingResponse(b, sess, now))
	}

	rooms := detail.FullBookedRooms
	if rooms == nil {
		rooms = []string{}
	}

	return DayDetailResponse{
		Date:            detail.Date,
		Bookings:        bookings,
		FullBookedRooms: rooms,
		CanCreate:       detail.CanCreate,
	}
}
