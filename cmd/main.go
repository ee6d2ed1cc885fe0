package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	_ "app1/docs"
	"app1/internal/controller"
	"app1/internal/handler"
	"app1/internal/server"
	"app1/pkg/utils"

	"github.com/gin-gonic/gin"
)

// @title App1 API
// @version 1.0
// @description Identity and liveness probe for the app1 deployment unit

// @host localhost:8080
// @BasePath /

func main() {
	utils.LoadEnv()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(utils.GetEnv("LOG_LEVEL", "info")),
	}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := gin.New()
	r.Use(gin.Recovery())

	ctrl, err := controller.New()
	if err != nil {
		log.Fatal("Failed to create controller:", err)
	}

	h, err := handler.New(
		handler.WithEngine(r),
		handler.WithController(ctrl),
		handler.WithLogger(logger),
		handler.WithSwagger(utils.GetEnvBool("SWAGGER_ENABLED", false)),
	)
	if err != nil {
		log.Fatal("Failed to create handler:", err)
	}
	if err := h.Setup(); err != nil {
		log.Fatal("Failed to setup routes:", err)
	}

	srv, err := server.New(
		server.WithHandler(r),
		server.WithLogger(logger),
		server.WithPort(utils.GetPort("PORT", server.DefaultPort)),
	)
	if err != nil {
		log.Fatal("Failed to create server:", err)
	}

	if err := srv.Run(ctx); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
