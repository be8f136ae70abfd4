package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sibaproject/siba-gateway/internal/availability"
	"github.com/sibaproject/siba-gateway/internal/calendar"
	"github.com/sibaproject/siba-gateway/internal/pkg/apperror"
	"github.com/sibaproject/siba-gateway/internal/pkg/response"
	"github.com/sibaproject/siba-gateway/internal/room"
	"github.com/sibaproject/siba-gateway/internal/session"
)

// Handler handles room catalog requests.
type Handler struct {
	rooms    room.Service
	calendar calendar.Service
}

// NewHandler creates a new room Handler.
func NewHandler(rooms room.Service, cal calendar.Service) *Handler {
	return &Handler{rooms: rooms, calendar: cal}
}

// List handles GET /rooms. Without a date query it returns the full
// catalog; with date=YYYY-MM-DD it returns only the rooms still
// selectable for a booking starting that day.
func (h *Handler) List(c *gin.Context) {
	sess := session.FromContext(c)

	var (
		catalog []room.Room
		err     error
	)
	if raw := c.Query("date"); raw != "" {
		day, ok := availability.ParseDay(raw)
		if !ok {
			response.Error(c, apperror.New(http.StatusBadRequest, "date must be formatted as YYYY-MM-DD"))
			return
		}
		catalog, err = h.calendar.RoomsForDate(c.Request.Context(), sess, day)
	} else {
		catalog, err = h.rooms.List(c.Request.Context(), sess)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]RoomResponse, 0, len(catalog))
	for _, r := range catalog {
		items = append(items, NewRoomResponse(r))
	}
	c.JSON(http.StatusOK, response.NewListResponse(items))
}
