package api

import (
	"net/http"

	"booking-crm/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardQueries queries.DashboardQueries
}

func NewDashboardHandler(dashboardQueries queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{
		dashboardQueries: dashboardQueries,
	}
}

// @Summary Dashboard statistics
// @Description Status counts, confirmed revenue and upcoming event count
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.DashboardStats
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardQueries.GetStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}
