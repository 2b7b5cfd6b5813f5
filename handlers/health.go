package handlers

import (
	"net/http"

	"bookmychair/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness plus the last dependency snapshot, if a
// monitor is running.
func HealthHandler(monitor *utils.HealthMonitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := gin.H{"status": "Backend running"}
		if monitor != nil {
			snap := monitor.Status()
			if !snap.CheckedAt.IsZero() {
				body["dependencies"] = snap.Dependencies
				body["checkedAt"] = snap.CheckedAt
			}
		}
		c.JSON(http.StatusOK, body)
	}
}
