package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers calendar routes to the given router group.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	calendars := g.Group("/calendar")
	{
		calendars.GET("", h.Month)
		calendars.GET("/days/:date", h.Day)
	}
}
