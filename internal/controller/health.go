package controller

import (
	"net/http"

	"app1/internal/models"

	"github.com/gin-gonic/gin"
)

// Health godoc
// @Summary Liveness probe
// @Description Reports that the instance is up
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (c *Controller) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, models.HealthResponse{
		Status:    models.StatusHealthy,
		Timestamp: models.Timestamp(c.now()),
	})
}
