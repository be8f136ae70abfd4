package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sibaproject/siba-gateway/internal/booking"
	bookingHttp "github.com/sibaproject/siba-gateway/internal/booking/http"
	"github.com/sibaproject/siba-gateway/internal/calendar"
	calendarHttp "github.com/sibaproject/siba-gateway/internal/calendar/http"
	"github.com/sibaproject/siba-gateway/internal/config"
	"github.com/sibaproject/siba-gateway/internal/room"
	roomHttp "github.com/sibaproject/siba-gateway/internal/room/http"
	"github.com/sibaproject/siba-gateway/internal/session"
	"github.com/sibaproject/siba-gateway/internal/upstream"
	"github.com/sibaproject/siba-gateway/internal/user"
	userHttp "github.com/sibaproject/siba-gateway/internal/user/http"
)

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Session)
// and registering routes for the various modules.
func NewRouter(
	cfg *config.Config,
	client *upstream.Client,
	sessions session.Service,
	bookingService booking.Service,
	roomService room.Service,
	userService user.Service,
	calendarService calendar.Service,
) *gin.Engine {

	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing). Credentials must be
	// allowed so the browser sends the session cookie.
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000", // local front end dev server
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	// sessionMiddleware: Resolves the session cookie on protected routes.
	sessionMiddleware := session.Required(sessions)
	// adminMiddleware: Further checks that the session role is admin.
	adminMiddleware := session.RequireAdmin()

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	authHandler := NewAuthHandler(client, sessions, cfg)
	bookingHandler := bookingHttp.NewHandler(bookingService)
	roomHandler := roomHttp.NewHandler(roomService, calendarService)
	userHandler := userHttp.NewHandler(userService)
	calendarHandler := calendarHttp.NewHandler(calendarService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register", authHandler.Register)
			auth.POST("/logout", authHandler.Logout)
		}

		protected := v1.Group("", sessionMiddleware)
		{
			protected.GET("/auth/me", authHandler.Me)
			bookingHttp.RegisterRoutes(protected, bookingHandler)
			roomHttp.RegisterRoutes(protected, roomHandler)
			calendarHttp.RegisterRoutes(protected, calendarHandler)

			admin := protected.Group("", adminMiddleware)
			{
				userHttp.RegisterRoutes(admin, userHandler)
			}
		}
	}

	return r
}
