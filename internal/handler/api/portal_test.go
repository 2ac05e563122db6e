//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"booking-crm/internal/handler/api"
	resdto "booking-crm/internal/handler/dto/response"
	"booking-crm/internal/usecase/queries"
	"booking-crm/tests/common/builder"
	"booking-crm/tests/common/httptest"
	queriesmock "booking-crm/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PortalHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockPortalQueries
	handler     *api.PortalHandler
}

func (s *PortalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockPortalQueries(s.mockCtrl)
	s.handler = api.NewPortalHandler(s.mockQueries)

	// Portal routes are public
	s.router.GET("/portal/bookings/:token", s.handler.GetBooking)
}

func (s *PortalHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPortalHandlerSuite(t *testing.T) {
	suite.Run(t, new(PortalHandlerTestSuite))
}

func (s *PortalHandlerTestSuite) TestGetBooking() {
	token := "1f7c2d85a9e34b60c4d2f8a17e5b9c30"
	url := "/portal/bookings/" + token

	b := builder.NewBookingBuilder()
	view := &queries.PortalBookingView{
		BookingNumber:    b.BookingNumber,
		CustomerName:     b.CustomerName,
		Status:           "confirmed",
		EventDate:        b.EventDate,
		Location:         b.Location,
		Products:         b.Products,
		TotalAmountCents: b.TotalAmountCents,
		TaxAmountCents:   b.TaxAmountCents,
	}

	s.Run("success: returns the customer projection without internal IDs", func() {
		s.mockQueries.EXPECT().GetBookingByToken(gomock.Any(), token).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.PortalBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(b.BookingNumber, response.BookingNumber)
		s.Equal("Bekräftad", response.StatusDisplay.Label)
		s.NotContains(rec.Body.String(), "customerId")
		s.NotContains(rec.Body.String(), "\"id\"")
	})

	s.Run("error: unknown and expired tokens both read as missing bookings", func() {
		for _, name := range []string{"unknown token", "expired token"} {
			s.Run(name, func() {
				s.mockQueries.EXPECT().GetBookingByToken(gomock.Any(), token).
					Return(nil, queries.ErrTokenInvalid).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
			})
		}
	})

	s.Run("error: returns 500 Internal Server Error on query error", func() {
		s.mockQueries.EXPECT().GetBookingByToken(gomock.Any(), token).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
