package api

import (
	"errors"
	"net/http"

	reqdto "booking-crm/internal/handler/dto/request"
	resdto "booking-crm/internal/handler/dto/response"
	"booking-crm/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminCommands commands.AdminCommands
}

func NewAdminHandler(adminCommands commands.AdminCommands) *AdminHandler {
	return &AdminHandler{
		adminCommands: adminCommands,
	}
}

// @Summary Create staff user
// @Description Create an auth identity and staff profile; generates a password when none is given
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateUserRequest true "User request"
// @Success 201 {object} resdto.CreateUserResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/create-user [post]
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.adminCommands.CreateUser(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Email already registered",
			})
		case errors.Is(err, commands.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid role",
			})
		case errors.Is(err, commands.ErrWeakPassword),
			errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request data",
			})
		case errors.Is(err, commands.ErrUserCreationFailed):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "User creation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateUserResult(result))
}

// @Summary Reset user password
// @Description Set a new password for an existing user; echoes the new password back
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ResetPasswordRequest true "Reset request"
// @Success 200 {object} resdto.ResetPasswordResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/reset-password [post]
func (h *AdminHandler) ResetPassword(c *gin.Context) {
	var req reqdto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.adminCommands.ResetPassword(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		case errors.Is(err, commands.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Password must be at least 6 characters long",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.ResetPasswordResponse{
		UserID:   req.UserID,
		Password: req.NewPassword,
	})
}
