package controller

import (
	"net/http"

	"app1/internal/models"

	"github.com/gin-gonic/gin"
)

// Root godoc
// @Summary Service identity
// @Description Returns a greeting, the deployment environment tag and the current UTC time
// @Tags identity
// @Produce json
// @Success 200 {object} models.RootResponse
// @Router / [get]
func (c *Controller) Root(ctx *gin.Context) {
	resp := models.RootResponse{
		Message: models.Greeting,
	}
	// read per request so changes to the environment show up immediately
	if env, ok := c.lookupEnv(c.envKey); ok {
		resp.Env = &env
	}
	resp.Timestamp = models.Timestamp(c.now())
	ctx.JSON(http.StatusOK, resp)
}
