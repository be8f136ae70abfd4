package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sibaproject/siba-gateway/internal/availability"
	"github.com/sibaproject/siba-gateway/internal/booking"
	"github.com/sibaproject/siba-gateway/internal/pkg/response"
	"github.com/sibaproject/siba-gateway/internal/session"
)

const (
	tabUpcoming = "upcoming"
	tabPast     = "past"
)

type Handler struct {
	service booking.Service
	now     func() time.Time
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{
		service: service,
		now:     time.Now,
	}
}

// List partitions the viewer's bookings into the upcoming/past tabs.
// Admins see every booking, other users only their own.
func (h *Handler) List(c *gin.Context) {
	tab := c.DefaultQuery("tab", tabUpcoming)
	if tab != tabUpcoming && tab != tabPast {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tab must be upcoming or past"})
		return
	}

	sess := session.FromContext(c)

	bookings, err := h.service.ListForViewer(c.Request.Context(), sess)
	if err != nil {
		response.Error(c, err)
		return
	}

	now := h.now()
	items := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		if availability.IsPastBooking(b, now) != (tab == tabPast) {
			continue
		}
		items = append(items, NewBookingResponse(b, sess, now))
	}

	c.JSON(http.StatusOK, response.NewListResponse(items))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	sess := session.FromContext(c)

	b, err := h.service.Get(c.Request.Context(), sess, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(*b, sess, h.now()))
}

func (h *Handler) Create(c *gin.Context) {
	var req SaveBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sess := session.FromContext(c)

	b, handoff, err := h.service.Create(c.Request.Context(), sess, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateBookingResponse{
		Booking:    NewBookingResponse(*b, sess, h.now()),
		HandoffURL: handoff,
	})
}

// guard refuses edits to bookings the session may not touch: not the
// owner (unless admin), or already started.
func (h *Handler) guard(c *gin.Context, id int64) bool {
	sess := session.FromContext(c)

	existing, err := h.service.Get(c.Request.Context(), sess, id)
	if err != nil {
		response.Error(c, err)
		return false
	}

	rendered := NewBookingResponse(*existing, sess, h.now())
	if !rendered.CanModify {
		response.Error(c, booking.ErrLocked)
		return false
	}
	return true
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var req SaveBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if !h.guard(c, id) {
		return
	}

	sess := session.FromContext(c)
	b, err := h.service.Update(c.Request.Context(), sess, id, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(*b, sess, h.now()))
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	if !h.guard(c, id) {
		return
	}

	sess := session.FromContext(c)
	if err := h.service.Delete(c.Request.Context(), sess, id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
