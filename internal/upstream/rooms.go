package upstream

import (
	"context"
	"net/http"

	"github.com/sibaproject/siba-gateway/internal/room"
)

// roomsEnvelope wraps the room catalog response ({"rooms": [...]}).
type roomsEnvelope struct {
	Rooms []room.Room `json:"rooms"`
}

// ListRooms fetches the room catalog.
func (c *Client) ListRooms(ctx context.Context, token string) ([]room.Room, error) {
	var out roomsEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/rooms", token, nil, &out); err != nil {
		return nil, err
	}
	return out.Rooms, nil
}
