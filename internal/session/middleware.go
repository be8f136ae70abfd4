package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sibaproject/siba-gateway/internal/pkg/apperror"
)

// CookieName is the session cookie set at login.
const CookieName = "siba_session"

const clearedKey = "sessionCleared"

// SetCookie attaches the session cookie to the response.
func SetCookie(c *gin.Context, id string, ttl time.Duration, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, id, int(ttl.Seconds()), "/", "", secure, true)
}

// ClearCookie removes the session cookie.
func ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}

// Required is a gin middleware that resolves the session cookie and
// stores the session in the request context. After the handler runs, an
// authorization failure reported by any handler tears the session down
// so the next request is forced back to login. The teardown fires at
// most once per request.
func Required(sessions Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(CookieName)
		if err != nil || id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
			})
			return
		}

		sess, err := sessions.Get(c.Request.Context(), id)
		if err != nil {
			ClearCookie(c)
			status := http.StatusUnauthorized
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				status = appErr.Code
			}
			c.AbortWithStatusJSON(status, gin.H{"error": "authentication required"})
			return
		}

		c.Set(contextKey, sess)

		c.Next()

		// The upstream rejected the session's token mid-request.
		if hasAuthFailure(c.Errors) && !c.GetBool(clearedKey) {
			c.Set(clearedKey, true)
			if err := sessions.Delete(c.Request.Context(), id); err != nil {
				zap.L().Warn("failed to delete rejected session", zap.Error(err))
			}
			ClearCookie(c)
		}
	}
}

// hasAuthFailure reports whether any recorded error carries a 401.
func hasAuthFailure(errs []*gin.Error) bool {
	for _, e := range errs {
		var appErr *apperror.AppError
		if errors.As(e.Err, &appErr) && appErr.Code == http.StatusUnauthorized {
			return true
		}
	}
	return false
}

// RequireAdmin refuses requests whose session role is not admin. It MUST
// be used after Required. The role comes from a locally decoded claim,
// so this only keeps honest users out of admin screens; the upstream
// still enforces the real permission on every call.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := FromContext(c)
		if sess == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if !sess.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: admin access required"})
			return
		}
		c.Next()
	}
}
