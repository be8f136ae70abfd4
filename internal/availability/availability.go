// Package availability holds the room-saturation rules shared by the
// calendar and the booking form. Everything here is a pure function over
// already-fetched bookings and rooms: no I/O, safe to call repeatedly
// from render paths. Records missing required fields are skipped, never
// raised — one bad booking must not blank out a whole month.
package availability

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sibaproject/siba-gateway/internal/booking"
)

const (
	// FullDayHours is the operating-hours capacity of a room on a working
	// day. A room whose summed booked hours reach it is full booked.
	FullDayHours = 7

	// WorkdayEndHour is the end of the working day; after it no new
	// booking can be started for the current day.
	WorkdayEndHour = 16
)

// ParseDay parses a calendar date as sent by the upstream API. A time
// suffix ("2025-06-02T00:00:00.000Z") is ignored: only the day matters.
func ParseDay(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// midnight normalizes t to 00:00 in its own location, so two instants on
// the same calendar day compare equal regardless of time-of-day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DatesInRange returns every calendar day from start to end inclusive.
// An end before start yields an empty sequence rather than an error.
func DatesInRange(start, end time.Time) []time.Time {
	first := midnight(start)
	last := midnight(end)

	var days []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// BookingsOnDay filters bookings to those whose inclusive date span
// touches day. Bookings without parseable dates are excluded.
func BookingsOnDay(bookings []booking.Booking, day time.Time) []booking.Booking {
	var out []booking.Booking
	for _, b := range bookings {
		start, ok := ParseDay(b.StartDate)
		if !ok {
			continue
		}
		end, ok := ParseDay(b.EndDate)
		if !ok {
			continue
		}
		for _, d := range DatesInRange(start, end) {
			if SameDay(d, day) {
				out = append(out, b)
				break
			}
		}
	}
	return out
}

// hourOf extracts the integer hour component of an "HH:MM" string.
// Minutes are discarded; duration math below works in whole hours only.
// This matches what the booking office has been relying on, so it stays
// even though a 16:30 end counts the same as 16:00.
func hourOf(clock string) (int, bool) {
	h, _, found := strings.Cut(clock, ":")
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(h)
	if err != nil {
		return 0, false
	}
	return n, true
}

// FullBookedRooms returns the names of rooms whose summed booking
// durations on day reach FullDayHours. A room booked several times the
// same day accumulates each duration; overlaps are not deduplicated.
// Multi-day bookings count their full daily duration on every span day,
// boundary days included.
func FullBookedRooms(bookings []booking.Booking, day time.Time) []string {
	hoursByRoom := map[string]int{}

	for _, b := range BookingsOnDay(bookings, day) {
		if b.StartTime == "" || b.EndTime == "" || b.Room.Name == "" {
			continue
		}
		start, ok := hourOf(b.StartTime)
		if !ok {
			continue
		}
		end, ok := hourOf(b.EndTime)
		if !ok {
			continue
		}
		hoursByRoom[b.Room.Name] += end - start
	}

	var full []string
	for name, total := range hoursByRoom {
		if total >= FullDayHours {
			full = append(full, name)
		}
	}
	// Stable output; map iteration order would leak into responses.
	sort.Strings(full)
	return full
}
