//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"booking-crm/internal/domain/user"
	"booking-crm/internal/handler/api"
	reqdto "booking-crm/internal/handler/dto/request"
	resdto "booking-crm/internal/handler/dto/response"
	"booking-crm/internal/usecase/commands"
	"booking-crm/tests/common/httptest"
	"booking-crm/tests/common/testutil"
	commandsmock "booking-crm/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAdminCommands
	handler      *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAdminCommands(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockCommands)

	// Mock admin authentication middleware for testing
	adminMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	s.router.POST("/admin/create-user", adminMiddleware, s.handler.CreateUser)
	s.router.POST("/admin/reset-password", adminMiddleware, s.handler.ResetPassword)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

// ================================================================================
// TestCreateUser
// ================================================================================

func (s *AdminHandlerTestSuite) TestCreateUser() {
	url := "/admin/create-user"

	reqBody := reqdto.CreateUserRequest{
		Email:    "ny.saljare@example.se",
		Password: "hemligt1",
		FullName: "Nya Säljaren",
		Role:     "sales",
	}

	s.Run("success: returns 201 Created with CreateUserResponse", func() {
		userID := uuid.New()
		s.mockCommands.EXPECT().CreateUser(gomock.Any(), reqBody).
			Return(&commands.CreateUserResult{
				UserID:   userID,
				Email:    reqBody.Email,
				Role:     user.RoleSales,
				Password: reqBody.Password,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.CreateUserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(userID, response.UserID)
		s.Equal(reqBody.Email, response.Email)
		s.Equal("sales", response.Role)
		s.Equal(reqBody.Password, response.Password)
	})

	s.Run("success: password is optional and echoed when generated", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("password", nil))
		s.mockCommands.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			Return(&commands.CreateUserResult{
				UserID:   uuid.New(),
				Email:    reqBody.Email,
				Role:     user.RoleSales,
				Password: "Genererat99x",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")

		var response resdto.CreateUserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("Genererat99x", response.Password)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "inte-en-adress")},
			{name: "password below six characters", mutate: testutil.Field("password", "fem55")},
			{name: "missing field: full_name (required)", mutate: testutil.Field("full_name", nil)},
			{name: "missing field: role (required)", mutate: testutil.Field("role", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "duplicate email",
				commandsError:  commands.ErrDuplicateEmail,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Email already registered",
			},
			{
				name:           "weak password",
				commandsError:  commands.ErrWeakPassword,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid request data",
			},
			{
				name:           "role outside the allow-list",
				commandsError:  commands.ErrInvalidRole,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid role",
			},
			{
				name:           "creation failed",
				commandsError:  commands.ErrUserCreationFailed,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "User creation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateUser(gomock.Any(), reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestResetPassword
// ================================================================================

func (s *AdminHandlerTestSuite) TestResetPassword() {
	url := "/admin/reset-password"

	reqBody := reqdto.ResetPasswordRequest{
		UserID:      uuid.New(),
		NewPassword: "nyttlosen",
	}

	s.Run("success: returns 200 OK echoing the new password", func() {
		s.mockCommands.EXPECT().ResetPassword(gomock.Any(), reqBody).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ResetPasswordResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(reqBody.UserID, response.UserID)
		s.Equal(reqBody.NewPassword, response.Password)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: user_id (required)", mutate: testutil.Field("user_id", nil)},
			{name: "missing field: new_password (required)", mutate: testutil.Field("new_password", nil)},
			{name: "password boundary invalid (5 chars)", mutate: testutil.Field("new_password", "fem55")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("success: password boundary OK (6 chars)", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("new_password", "sex666"))
		s.mockCommands.EXPECT().ResetPassword(gomock.Any(), gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "user not found",
				commandsError:  commands.ErrUserNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "User not found",
			},
			{
				name:           "weak password",
				commandsError:  commands.ErrWeakPassword,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Password must be at least 6 characters long",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ResetPassword(gomock.Any(), reqBody).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
