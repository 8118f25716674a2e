package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gumutoni/tasktidy/internal/pkg/response"
	"github.com/gumutoni/tasktidy/internal/service"
)

type SystemHandler struct {
	environment string
	health      *service.StoreHealth
}

func NewSystemHandler(environment string, health *service.StoreHealth) *SystemHandler {
	return &SystemHandler{environment: environment, health: health}
}

func (h *SystemHandler) Banner(c *gin.Context) {
	c.String(http.StatusOK, "TaskTidy API is running...")
}

// Health reports OK while the background store probe keeps succeeding. A
// degraded store is still a 200: the process itself is up.
func (h *SystemHandler) Health(c *gin.Context) {
	status := "OK"
	if !h.health.Healthy() {
		status = "DEGRADED"
	}
	response.JSON(c, http.StatusOK, gin.H{
		"status":      status,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.environment,
	})
}
