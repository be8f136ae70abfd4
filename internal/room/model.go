package room

import (
	"net/http"

	"github.com/sibaproject/siba-gateway/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "room not found")

// TypeConference marks the virtual meeting room type. Rooms of any other
// type are physical rooms; the two groups are labeled separately when a
// day saturates.
const TypeConference = "ZOOM MEETING"

// Room is a bookable room as served by the upstream catalog. The catalog
// is read-only from the gateway's perspective.
type Room struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// IsConference reports whether the room is the virtual meeting type.
func (r Room) IsConference() bool {
	return r.Type == TypeConference
}
