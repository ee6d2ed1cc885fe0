package controller

import (
	"errors"
	"net/http"

	"app1/internal/models"

	"github.com/gin-gonic/gin"
)

var (
	ErrEmptyEnvKey  = errors.New("env key cannot be empty")
	ErrNilEnvLookup = errors.New("env lookup cannot be nil")
	ErrNilClock     = errors.New("clock cannot be nil")
)

func errorWithDetails(ctx *gin.Context, status int, message string, details string) {
	ctx.JSON(status, models.APIError{Error: message, Details: details})
}

func notFoundWithDetails(ctx *gin.Context, message string, details string) {
	errorWithDetails(ctx, http.StatusNotFound, message, details)
}

// NotFound is installed as the engine's NoRoute handler.
func (c *Controller) NotFound(ctx *gin.Context) {
	notFoundWithDetails(ctx, "not found", ctx.Request.Method+" "+ctx.Request.URL.Path)
}
