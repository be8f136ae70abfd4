package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers user management routes to the given router
// group. The group is expected to carry the admin gate already.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	users := g.Group("/users")
	{
		users.GET("", h.List)
		users.GET("/:id", h.Get)
		users.PUT("/:id", h.Update)
		users.DELETE("/:id", h.Delete)
	}
}
