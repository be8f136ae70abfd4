package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sibaproject/siba-gateway/internal/availability"
	"github.com/sibaproject/siba-gateway/internal/calendar"
	"github.com/sibaproject/siba-gateway/internal/pkg/apperror"
	"github.com/sibaproject/siba-gateway/internal/pkg/response"
	"github.com/sibaproject/siba-gateway/internal/session"
)

const monthFormat = "2006-01"

// Handler handles calendar view requests.
type Handler struct {
	service calendar.Service
	now     func() time.Time
}

// NewHandler creates a new calendar Handler.
func NewHandler(service calendar.Service) *Handler {
	return &Handler{service: service, now: time.Now}
}

// Month handles GET /calendar. The optional month query selects the
// rendered month (YYYY-MM); it defaults to the current one.
func (h *Handler) Month(c *gin.Context) {
	sess := session.FromContext(c)

	ref := h.now()
	if raw := c.Query("month"); raw != "" {
		parsed, err := time.ParseInLocation(monthFormat, raw, time.Local)
		if err != nil {
			response.Error(c, apperror.New(http.StatusBadRequest, "month must be formatted as YYYY-MM"))
			return
		}
		ref = parsed
	}

	cells, err := h.service.Month(c.Request.Context(), sess, ref)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := MonthResponse{
		Month: ref.Format(monthFormat),
		Days:  make([]DayCellResponse, 0, len(cells)),
	}
	for _, cell := range cells {
		resp.Days = append(resp.Days, NewDayCellResponse(cell))
	}
	c.JSON(http.StatusOK, resp)
}

// Day handles GET /calendar/days/:date.
func (h *Handler) Day(c *gin.Context) {
	sess := session.FromContext(c)

	day, ok := availability.ParseDay(c.Param("date"))
	if !ok {
		response.Error(c, apperror.New(http.StatusBadRequest, "date must be formatted as YYYY-MM-DD"))
		return
	}

	detail, err := h.service.Day(c.Request.Context(), sess, day)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewDayDetailResponse(detail, sess, h.now()))
}
