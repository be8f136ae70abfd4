// Package calendar assembles the dashboard month view and day detail
// from fetched bookings and rooms. The builders are pure so the render
// path can call them on every request.
package calendar

import (
	"time"

	"github.com/sibaproject/siba-gateway/internal/availability"
	"github.com/sibaproject/siba-gateway/internal/booking"
	"github.com/sibaproject/siba-gateway/internal/room"
)

// DayCell is one calendar cell of the month view.
type DayCell struct {
	Date            string
	Weekday         time.Weekday
	Today           bool
	BookingCount    int
	FullBookedRooms []string
	Label           string
	LabelSeverity   availability.Severity
	CanCreate       bool
}

// DayDetail is the side panel for a selected day.
type DayDetail struct {
	Date            string
	Bookings        []booking.Booking
	FullBookedRooms []string
	CanCreate       bool
}

const dayFormat = "2006-01-02"

// canCreate reports whether the "create booking" affordance is offered
// for a day: not past working time, and at least one room not yet full.
func canCreate(fullRooms []string, rooms []room.Room, day, now time.Time) bool {
	return !availability.IsPastWorkingTime(day, now) && len(fullRooms) < len(rooms)
}

// BuildMonth produces one cell per day of the month containing ref.
func BuildMonth(bookings []booking.Booking, rooms []room.Room, ref, now time.Time) []DayCell {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	last := first.AddDate(0, 1, -1)

	var cells []DayCell
	for _, day := range availability.DatesInRange(first, last) {
		dayBookings := availability.BookingsOnDay(bookings, day)
		fullRooms := availability.FullBookedRooms(bookings, day)

		cell := DayCell{
			Date:            day.Format(dayFormat),
			Weekday:         day.Weekday(),
			Today:           availability.SameDay(day, now),
			BookingCount:    len(dayBookings),
			FullBookedRooms: fullRooms,
			CanCreate:       canCreate(fullRooms, rooms, day, now),
		}
		if label, ok := availability.DayLabel(fullRooms, rooms); ok {
			cell.Label = label.Text
			cell.LabelSeverity = label.Severity
		}
		cells = append(cells, cell)
	}
	return cells
}

// BuildDay produces the detail panel for one selected day.
func BuildDay(bookings []booking.Booking, rooms []room.Room, day, now time.Time) DayDetail {
	fullRooms := availability.FullBookedRooms(bookings, day)

	return DayDetail{
		Date:            day.Format(dayFormat),
		Bookings:        availability.BookingsOnDay(bookings, day),
		FullBookedRooms: fullRooms,
		CanCreate:       canCreate(fullRooms, rooms, day, now),
	}
}

// SelectableRooms returns the rooms still offerable for a booking
// starting on day: weekends offer nothing, and rooms already full booked
// that day are excluded. Only bookings starting on day or spanning over
// it are counted against the rooms.
func SelectableRooms(bookings []booking.Booking, rooms []room.Room, day time.Time) []room.Room {
	if availability.IsWeekend(day) {
		return nil
	}

	relevant := relevantForStart(bookings, day)
	full := availability.FullBookedRooms(relevant, day)
	fullSet := map[string]bool{}
	for _, name := range full {
		fullSet[name] = true
	}

	var selectable []room.Room
	for _, r := range rooms {
		if !fullSet[r.Name] {
			selectable = append(selectable, r)
		}
	}
	return selectable
}

// relevantForStart keeps bookings that start on day or whose multi-day
// span overlaps it.
func relevantForStart(bookings []booking.Booking, day time.Time) []booking.Booking {
	var out []booking.Booking
	for _, b := range bookings {
		start, ok := availability.ParseDay(b.StartDate)
		if !ok {
			continue
		}
		if availability.SameDay(start, day) {
			out = append(out, b)
			continue
		}
		end, ok := availability.ParseDay(b.EndDate)
		if !ok {
			continue
		}
		if !start.After(day) && !end.Before(day) {
			out = append(out, b)
		}
	}
	return out
}
