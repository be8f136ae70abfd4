package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sibaproject/siba-gateway/internal/config"
	"github.com/sibaproject/siba-gateway/internal/pkg/apperror"
	"github.com/sibaproject/siba-gateway/internal/pkg/response"
	"github.com/sibaproject/siba-gateway/internal/session"
	"github.com/sibaproject/siba-gateway/internal/upstream"
)

type AuthHandler struct {
	upstream *upstream.Client
	sessions session.Service
	cfg      *config.Config
}

func NewAuthHandler(client *upstream.Client, sessions session.Service, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		upstream: client,
		sessions: sessions,
		cfg:      cfg,
	}
}

//
// POST /v1/auth/login
//

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ctx := c.Request.Context()

	result, err := h.upstream.Login(ctx, upstream.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusUnauthorized {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		response.Error(c, err)
		return
	}

	sess, err := h.sessions.Create(ctx, result.Token, result.User)
	if err != nil {
		response.Error(c, err)
		return
	}

	session.SetCookie(c, sess.ID, h.cfg.SessionTTL, h.cfg.IsProduction)
	c.JSON(http.StatusOK, LoginResponse{User: NewUserResponse(sess)})
}

//
// POST /v1/auth/register
//

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.upstream.Register(c.Request.Context(), upstream.Registration{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "account created"})
}

//
// POST /v1/auth/logout
//

// Logout tears down the session named by the cookie. It never fails:
// a missing or unknown cookie just means there is nothing to clear.
func (h *AuthHandler) Logout(c *gin.Context) {
	if id, err := c.Cookie(session.CookieName); err == nil && id != "" {
		if err := h.sessions.Delete(c.Request.Context(), id); err != nil {
			zap.L().Warn("failed to delete session on logout", zap.Error(err))
		}
	}
	session.ClearCookie(c)
	c.Status(http.StatusNoContent)
}

//
// GET /v1/auth/me
//

func (h *AuthHandler) Me(c *gin.Context) {
	sess := session.FromContext(c)
	if sess == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	c.JSON(http.StatusOK, MeResponse{User: NewUserResponse(sess)})
}
