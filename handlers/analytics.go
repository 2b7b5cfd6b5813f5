package handlers

import (
	"net/http"

	"bookmychair/services/analytics"
	"bookmychair/utils"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	Service analytics.AnalyticsService
}

func NewAnalyticsHandler(svc analytics.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{Service: svc}
}

// PopularChairsHandler returns [{type, bookings}] busiest first.
func (h *AnalyticsHandler) PopularChairsHandler(c *gin.Context) {
	rows, err := h.Service.PopularChairTypes(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// PeakHoursHandler returns [{hour, bookings}] by hour of day.
func (h *AnalyticsHandler) PeakHoursHandler(c *gin.Context) {
	rows, err := h.Service.PeakHours(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
