package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers room routes to the given router group.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	rooms := g.Group("/rooms")
	{
		rooms.GET("", h.List)
	}
}
