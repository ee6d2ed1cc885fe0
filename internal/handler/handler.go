package handler

import (
	"errors"
	"log/slog"

	"app1/internal/controller"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var (
	ErrNilEngine     = errors.New("engine is required")
	ErrNilController = errors.New("controller is required")
)

type Handler struct {
	engine     *gin.Engine
	controller *controller.Controller
	logger     *slog.Logger
	swagger    bool
}

func (h *Handler) IsValid() error {
	if h.engine == nil {
		return ErrNilEngine
	}
	if h.controller == nil {
		return ErrNilController
	}
	return nil
}

type Option func(*Handler)

func WithEngine(engine *gin.Engine) Option {
	return func(h *Handler) {
		h.engine = engine
	}
}

func WithController(ctrl *controller.Controller) Option {
	return func(h *Handler) {
		h.controller = ctrl
	}
}

// WithLogger enables per-request access logging.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = l
	}
}

func WithSwagger(enabled bool) Option {
	return func(h *Handler) {
		h.swagger = enabled
	}
}

func New(opts ...Option) (*Handler, error) {
	h := &Handler{}
	for _, opt := range opts {
		opt(h)
	}
	if err := h.IsValid(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Handler) Setup() error {
	if h.logger != nil {
		h.engine.Use(RequestLogger(h.logger))
	}

	// routes match exactly; unmatched methods and paths fall through to NoRoute
	h.engine.HandleMethodNotAllowed = false
	h.engine.RedirectTrailingSlash = false
	h.engine.RedirectFixedPath = false
	h.engine.NoRoute(h.controller.NotFound)

	h.engine.GET("/", h.controller.Root)
	h.engine.GET("/health", h.controller.Health)

	if h.swagger {
		h.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return nil
}
