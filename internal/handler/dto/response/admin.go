package response

import (
	"booking-crm/internal/usecase/commands"

	"github.com/google/uuid"
)

// Password is included so the admin can hand the credentials over; it is
// never retrievable again.
type CreateUserResponse struct {
	UserID   uuid.UUID `json:"userId"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Password string    `json:"password"`
}

func FromCreateUserResult(result *commands.CreateUserResult) *CreateUserResponse {
	return &CreateUserResponse{
		UserID:   result.UserID,
		Email:    result.Email,
		Role:     result.Role.String(),
		Password: result.Password,
	}
}

type ResetPasswordResponse struct {
	UserID   uuid.UUID `json:"userId"`
	Password string    `json:"password"`
}
