package http

import (
	"github.com/sibaproject/siba-gateway/internal/room"
)

// RoomResponse is the room representation of the room endpoints.
type RoomResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

func NewRoomResponse(r room.Room) RoomResponse {
	return RoomResponse{
		ID:   r.ID,
		Name: r.Name,
		Type: r.Type,
	}
}
