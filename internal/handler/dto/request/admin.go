package request

import (
	"github.com/google/uuid"
)

// Password is optional; when omitted one is generated and returned in the
// response body.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"omitempty,min=6"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type ResetPasswordRequest struct {
	UserID      uuid.UUID `json:"user_id" binding:"required"`
	NewPassword string    `json:"new_password" binding:"required,min=6"`
}
