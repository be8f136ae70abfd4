package api

import (
	"github.com/sibaproject/siba-gateway/internal/session"
)

// LoginRequest is the payload for POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the payload for POST /v1/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the shape of the signed-in account in API responses.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse is the response for POST /v1/auth/login.
type LoginResponse struct {
	User UserResponse `json:"user"`
}

// MeResponse is the response for GET /v1/auth/me.
type MeResponse struct {
	User UserResponse `json:"user"`
}

// NewUserResponse converts the stored session identity to the API shape.
func NewUserResponse(sess *session.Session) UserResponse {
	return UserResponse{
		ID:    sess.User.ID,
		Name:  sess.User.Name,
		Email: sess.User.Email,
		Role:  sess.Role,
	}
}
