package api

import (
	"errors"
	"net/http"

	resdto "booking-crm/internal/handler/dto/response"
	"booking-crm/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PortalHandler struct {
	portalQueries queries.PortalQueries
}

func NewPortalHandler(portalQueries queries.PortalQueries) *PortalHandler {
	return &PortalHandler{
		portalQueries: portalQueries,
	}
}

// @Summary Customer booking view
// @Description Look up a booking by its access token; no authentication required
// @Tags portal
// @Produce json
// @Param token path string true "Access token"
// @Success 200 {object} resdto.PortalBookingResponse
// @Failure 404 {object} map[string]string
// @Router /portal/bookings/{token} [get]
func (h *PortalHandler) GetBooking(c *gin.Context) {
	view, err := h.portalQueries.GetBookingByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		if errors.Is(err, queries.ErrTokenInvalid) {
			// Unknown and expired tokens get the same answer.
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

	c.JSON(http.StatusOK, resdto.FromPortalBookingView(view))
}
