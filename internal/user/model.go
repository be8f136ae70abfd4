package user

import (
	"net/http"

	"github.com/sibaproject/siba-gateway/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "user not found")

// User is an account as served by the upstream user endpoints.
// Managed by administrators only.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UpdateInput is the payload for editing an account. An empty Password
// is omitted entirely so the upstream keeps the current one.
type UpdateInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password,omitempty"`
}
