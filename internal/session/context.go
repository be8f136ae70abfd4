package session

import "github.com/gin-gonic/gin"

const contextKey = "session"

// FromContext returns the session stored by the Required middleware,
// or nil when the request is unauthenticated.
func FromContext(c *gin.Context) *Session {
	if v, ok := c.Get(contextKey); ok {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	return nil
}
