package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	reqdto "booking-crm/internal/handler/dto/request"
	"booking-crm/internal/handler/middleware"
	"booking-crm/internal/infra/realtime"
	"booking-crm/internal/usecase/commands"
	"booking-crm/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentCommands commands.CommentCommands
	commentQueries  queries.CommentQueries
	broker          *realtime.CommentBroker
}

func NewCommentHandler(commentCommands commands.CommentCommands, commentQueries queries.CommentQueries, broker *realtime.CommentBroker) *CommentHandler {
	return &CommentHandler{
		commentCommands: commentCommands,
		commentQueries:  commentQueries,
		broker:          broker,
	}
}

// @Summary Add comment
// @Description Attach an internal comment to a booking
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CreateCommentRequest true "Comment request"
// @Success 201 {object} queries.CommentView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	bookingID, ok := parseBookingID(c)
	if !ok {
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.commentCommands.CreateComment(c.Request.Context(), bookingID, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrEmptyComment):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Comment body is empty",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary List comments
// @Description List the comments on a booking, oldest first
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {array} queries.CommentView
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	bookingID, ok := parseBookingID(c)
	if !ok {
		return
	}

	views, err := h.commentQueries.ListComments(c.Request.Context(), bookingID)
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

	c.JSON(http.StatusOK, views)
}

// @Summary Stream comments
// @Description Server-sent events stream of new comments on a booking
// @Tags comments
// @Produce text/event-stream
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Router /bookings/{id}/comments/stream [get]
func (h *CommentHandler) StreamComments(c *gin.Context) {
	bookingID, ok := parseBookingID(c)
	if !ok {
		return
	}

	events, err := h.broker.Subscribe(c.Request.Context(), bookingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Stream(func(_ io.Writer) bool {
		event, open := <-events
		if !open {
			return false
		}
		payload, marshalErr := json.Marshal(event)
		if marshalErr != nil {
			return true
		}
		c.SSEvent("comment", string(payload))
		return true
	})
}
