//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"booking-crm/internal/domain/booking"
	"booking-crm/internal/domain/user"
	"booking-crm/internal/handler/api"
	resdto "booking-crm/internal/handler/dto/response"
	"booking-crm/internal/usecase/commands"
	"booking-crm/internal/usecase/queries"
	"booking-crm/tests/common/builder"
	"booking-crm/tests/common/httptest"
	"booking-crm/tests/common/testutil"
	commandsmock "booking-crm/tests/mock/commands"
	queriesmock "booking-crm/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleSales)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.ListBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.PATCH("/bookings/:id/status", authMiddleware, s.handler.TransitionBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildCreateDTO()
	returnView := builder.NewBookingBuilder().BuildView()

	s.Run("success: returns 201 Created with BookingResponse", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.BookingNumber, response.BookingNumber)
		s.Equal("draft", response.Status)
		s.Equal("Utkast", response.StatusDisplay.Label)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: customer_id (required)", mutate: testutil.Field("customer_id", nil)},
			{name: "negative total amount", mutate: testutil.Field("total_amount_cents", -1)},
			{name: "negative tax amount", mutate: testutil.Field("tax_amount_cents", -500)},
			{name: "product with zero quantity", mutate: testutil.Field("products", []map[string]any{{"name": "Scenpodium", "quantity": 0}})},
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
				name:           "customer not found",
				commandsError:  commands.ErrCustomerNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Customer not found",
			},
			{
				name:           "domain validation",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Booking validation failed",
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
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	url := "/bookings"

	items := []queries.BookingListItem{
		*listItemWithStatus("pending"),
		*listItemWithStatus("confirmed"),
	}

	s.Run("success: returns booking list", func() {
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), queries.BookingListFilter{}).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("Väntande", response[0].StatusDisplay.Label)
		s.Equal("Bekräftad", response[1].StatusDisplay.Label)
	})

	s.Run("success: forwards status filter and pagination", func() {
		status := "confirmed"
		expectedFilter := queries.BookingListFilter{Status: &status, Limit: 10, Offset: 20}
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), expectedFilter).
			Return(items[1:], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=confirmed&limit=10&offset=20", nil, "bearer-token")

		var response []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: empty result is an empty array, not null", func() {
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), queries.BookingListFilter{}).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: returns 500 Internal Server Error on query error", func() {
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), queries.BookingListFilter{}).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	returnView := builder.NewBookingBuilder().BuildView()
	returnView.ID = bookingID

	s.Run("success: returns 200 OK with BookingResponse", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.Equal(returnView.CustomerName, response.CustomerName)
		s.Len(response.Products, len(returnView.Products))
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), bookingID).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestTransitionBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestTransitionBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/status"

	s.Run("success: confirm returns 200 OK with access token", func() {
		token := "1f7c2d85a9e34b60c4d2f8a17e5b9c30"
		s.mockCommands.EXPECT().Transition(gomock.Any(), bookingID, "confirmed").
			Return(&commands.TransitionResult{
				BookingID: bookingID,
				NewStatus: booking.StatusConfirmed,
				Token:     &token,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]string{"status": "confirmed"}, "bearer-token")

		var response resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.Equal("confirmed", response.Status)
		s.Equal("Bekräftad", response.StatusDisplay.Label)
		s.Require().NotNil(response.AccessToken)
		s.Equal(token, *response.AccessToken)
	})

	s.Run("success: non-confirm transition omits the token", func() {
		s.mockCommands.EXPECT().Transition(gomock.Any(), bookingID, "completed").
			Return(&commands.TransitionResult{
				BookingID: bookingID,
				NewStatus: booking.StatusCompleted,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]string{"status": "completed"}, "bearer-token")

		var response resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Nil(response.AccessToken)
		s.NotContains(rec.Body.String(), "accessToken")
	})

	s.Run("error: 400 Bad Request when status field missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]string{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/invalid-uuid/status",
			map[string]string{"status": "confirmed"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]string{"status": "confirmed"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			target         string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				target:         "confirmed",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "unknown status",
				target:         "archived",
				commandsError:  commands.ErrUnknownStatus,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Unknown status",
			},
			{
				name:           "illegal transition",
				target:         "completed",
				commandsError:  commands.ErrIllegalTransition,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Illegal status transition",
			},
			{
				name:           "internal server error",
				target:         "confirmed",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Transition(gomock.Any(), bookingID, tc.target).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
					map[string]string{"status": tc.target}, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func listItemWithStatus(status string) *queries.BookingListItem {
	b := builder.NewBookingBuilder()
	return &queries.BookingListItem{
		ID:               b.ID,
		BookingNumber:    b.BookingNumber,
		CustomerName:     b.CustomerName,
		Status:           status,
		EventDate:        b.EventDate,
		TotalAmountCents: b.TotalAmountCents,
		CreatedAt:        b.EventDate.AddDate(0, -1, 0),
	}
}
