package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sefraniabdou1937/backend-az/internal/monitoring"
)

// HealthCheck reports process liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Status serves the monitoring snapshot.
func Status(service *monitoring.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, service.Snapshot())
	}
}
