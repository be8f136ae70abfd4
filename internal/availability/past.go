package availability

import (
	"strconv"
	"strings"
	"time"

	"github.com/sibaproject/siba-gateway/internal/booking"
)

// clockOf parses an "HH:MM" string into hour and minute components.
func clockOf(clock string) (hour, minute int, ok bool) {
	h, m, found := strings.Cut(clock, ":")
	if !found {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, 0, false
	}
	// Minute strings may carry a seconds suffix ("09:30:00").
	if i := strings.IndexByte(m, ':'); i >= 0 {
		m = m[:i]
	}
	minute, err = strconv.Atoi(m)
	if err != nil {
		return 0, 0, false
	}
	return hour, minute, true
}

// IsPastBooking reports whether the booking's start instant (startDate at
// startTime, seconds zeroed) is strictly before now. A booking starting
// exactly at now is not past. Bookings with unparseable start fields are
// treated as not past, keeping their cards visible rather than silently
// locking them.
func IsPastBooking(b booking.Booking, now time.Time) bool {
	day, ok := ParseDay(b.StartDate)
	if !ok {
		return false
	}
	hour, minute, ok := clockOf(b.StartTime)
	if !ok {
		return false
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, now.Location())
	return now.After(start)
}

// IsPastWorkingTime reports whether day is no longer open for new
// bookings: today after the working-day cutoff, or any day before
// today. This gates the "create booking" affordance for a selected
// calendar day; it is a fixed-cutoff rule, distinct from IsPastBooking
// which looks at a specific booking's start time.
func IsPastWorkingTime(day, now time.Time) bool {
	if SameDay(day, now) {
		cutoff := time.Date(now.Year(), now.Month(), now.Day(), WorkdayEndHour, 0, 0, 0, now.Location())
		return now.After(cutoff)
	}
	return midnight(day).Before(midnight(now))
}

// IsWeekend reports whether day falls on Saturday or Sunday. Rooms are
// not bookable on weekends.
func IsWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
