package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"github.com/sibaproject/siba-gateway/internal/api"
	"github.com/sibaproject/siba-gateway/internal/booking"
	"github.com/sibaproject/siba-gateway/internal/calendar"
	"github.com/sibaproject/siba-gateway/internal/config"
	"github.com/sibaproject/siba-gateway/internal/room"
	"github.com/sibaproject/siba-gateway/internal/session"
	"github.com/sibaproject/siba-gateway/internal/upstream"
	"github.com/sibaproject/siba-gateway/internal/user"
)

// Container holds the initialized components that are needed externally.
type Container struct {
	Router   *gin.Engine
	Sessions session.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg *config.Config, db *sql.DB) *Container {
	// Upstream API client shared by every module.
	client := upstream.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)

	// Session Module
	sessionRepo := session.NewSQLiteRepository(db)
	sessionService := session.NewService(sessionRepo, cfg.SessionTTL)

	// Room Module
	roomService := room.NewService(client)

	// Booking Module
	bookingService := booking.NewService(client, client, cfg.AdminWhatsApp)

	// User Module
	userService := user.NewService(client)

	// Calendar Module
	calendarService := calendar.NewService(bookingService, roomService)

	// Router
	router := api.NewRouter(
		cfg,
		client,
		sessionService,
		bookingService,
		roomService,
		userService,
		calendarService,
	)

	return &Container{
		Router:   router,
		Sessions: sessionService,
	}
}
