package http

import (
	"github.com/sibaproject/siba-gateway/internal/user"
)

// UserResponse is the account representation of the user endpoints.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// UpdateUserRequest is the payload for editing an account. A blank
// password leaves the current one untouched.
type UpdateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"required,oneof=user admin"`
	Password string `json:"password"`
}

func (r UpdateUserRequest) toInput() user.UpdateInput {
	return user.UpdateInput{
		Name:     r.Name,
		Email:    r.Email,
		Role:     r.Role,
		Password: r.Password,
	}
}
