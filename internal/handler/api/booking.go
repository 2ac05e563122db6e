package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "booking-crm/internal/handler/dto/request"
	resdto "booking-crm/internal/handler/dto/response"
	"booking-crm/internal/usecase/commands"
	"booking-crm/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Create a draft booking for a customer
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.CreateBooking(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Booking validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List bookings, optionally filtered by status
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} resdto.BookingListResponse
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	filter := queries.BookingListFilter{}

	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	if limit, err := strconv.ParseInt(c.DefaultQuery("limit", "0"), 10, 32); err == nil {
		filter.Limit = int32(limit)
	}
	if offset, err := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 32); err == nil {
		filter.Offset = int32(offset)
	}

	items, err := h.bookingQueries.ListBookings(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	responses := make([]*resdto.BookingListResponse, 0, len(items))
	for i := range items {
		responses = append(responses, resdto.FromBookingListItem(&items[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Get booking
// @Description Get a booking with customer details
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := parseBookingID(c)
	if !ok {
		return
	}

	view, err := h.bookingQueries.GetBooking(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Transition booking status
// @Description Move a booking along its lifecycle; confirming issues a customer access token
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.TransitionBookingRequest true "Target status"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) TransitionBooking(c *gin.Context) {
	id, ok := parseBookingID(c)
	if !ok {
		return
	}

	var req reqdto.TransitionBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.Transition(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrUnknownStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown status",
			})
		case errors.Is(err, commands.ErrIllegalTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Illegal status transition",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTransitionResult(result))
}

func parseBookingID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID",
		})
		return uuid.Nil, false
	}
	return id, true
}
