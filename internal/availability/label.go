package availability

import (
	"fmt"

	"github.com/sibaproject/siba-gateway/internal/room"
)

// Severity of a day label: a blocker means the day (or a whole room
// class) is gone, a warning means it is close.
type Severity string

const (
	SeverityBlocker Severity = "blocker"
	SeverityWarning Severity = "warning"
)

// Label is the short saturation message shown on a calendar day cell.
type Label struct {
	Text     string
	Severity Severity
}

// DayLabel classifies a day given its full-booked room names and the
// room catalog. The second return value is false when nothing is full
// booked and no label should be shown.
//
// The branches are priority ordered; only the first match applies:
//  1. every room full            -> "Fully booked"
//  2. every conference room full -> "Zoom Meeting Full Booked"
//  3. one physical room left     -> "1 room left" (warning, not blocker)
//  4. otherwise                  -> "<n> fullbooked", n counting full
//     physical rooms only
func DayLabel(fullRooms []string, rooms []room.Room) (Label, bool) {
	if len(fullRooms) == 0 {
		return Label{}, false
	}

	fullSet := map[string]bool{}
	for _, name := range fullRooms {
		fullSet[name] = true
	}

	var confTotal, confFull, physTotal, physFull int
	for _, r := range rooms {
		if r.IsConference() {
			confTotal++
			if fullSet[r.Name] {
				confFull++
			}
		} else {
			physTotal++
			if fullSet[r.Name] {
				physFull++
			}
		}
	}

	switch {
	case len(fullRooms) == len(rooms):
		return Label{Text: "Fully booked", Severity: SeverityBlocker}, true
	case confTotal > 0 && confFull == confTotal:
		return Label{Text: "Zoom Meeting Full Booked", Severity: SeverityBlocker}, true
	case physTotal-physFull == 1:
		return Label{Text: "1 room left", Severity: SeverityWarning}, true
	default:
		return Label{Text: fmt.Sprintf("%d fullbooked", physFull), Severity: SeverityBlocker}, true
	}
}
