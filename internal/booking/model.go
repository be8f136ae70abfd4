package booking

import (
	"net/http"

	"github.com/sibaproject/siba-gateway/internal/pkg/apperror"
	"github.com/sibaproject/siba-gateway/internal/room"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "booking not found")
	ErrMissingFields = apperror.New(http.StatusBadRequest, "all fields are required")
	ErrBadCount      = apperror.New(http.StatusBadRequest, "participant count must be a positive number")
	ErrLocked        = apperror.New(http.StatusForbidden, "booking can no longer be modified")
)

// Status values assigned by the upstream API. The gateway never changes
// a status, it only renders it.
type Status string

const (
	StatusApproved Status = "approved"
	StatusPending  Status = "pending"
	StatusRejected Status = "rejected"
	StatusUnknown  Status = "unknown"
)

// Booking mirrors the upstream wire shape. Dates are calendar days
// ("2006-01-02", sometimes with a time suffix the upstream appends) and
// times are "HH:MM" within a day; both stay strings here so one malformed
// record can be skipped during aggregation instead of failing the decode
// of a whole list.
type Booking struct {
	ID               int64     `json:"id"`
	RoomID           int64     `json:"roomId"`
	Room             room.Room `json:"room"`
	StartDate        string    `json:"startDate"`
	EndDate          string    `json:"endDate"`
	StartTime        string    `json:"startTime"`
	EndTime          string    `json:"endTime"`
	ParticipantCount int       `json:"participantCount"`
	EventName        string    `json:"eventName"`
	Description      string    `json:"description"`
	PenanggungJawab  string    `json:"penanggungJawab"`
	UserID           int64     `json:"userId"`
	Status           Status    `json:"status"`
}

// Input is the payload for creating or updating a booking, forwarded to
// the upstream as-is once validated.
type Input struct {
	RoomID           int64  `json:"roomId"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	ParticipantCount int    `json:"participantCount"`
	EventName        string `json:"eventName"`
	Description      string `json:"description"`
	PenanggungJawab  string `json:"penanggungJawab"`
}
