package server

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

const (
	DefaultPort            = 8080
	DefaultShutdownTimeout = 10 * time.Second
)

var (
	ErrInvalidServerConfig = errors.New("invalid server config")
	ErrNotListening        = errors.New("server is not listening")
	ErrAlreadyListening    = errors.New("server is already listening")
)

// Server owns the listening socket and the http.Server serving on it.
type Server struct {
	handler         http.Handler
	logger          *slog.Logger
	host            string
	port            int
	shutdownTimeout time.Duration

	listener net.Listener
	srv      *http.Server
}

type Option func(*Server)

func WithHandler(h http.Handler) Option {
	return func(s *Server) {
		s.handler = h
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// WithHost restricts the bind address. Empty means all interfaces.
func WithHost(host string) Option {
	return func(s *Server) {
		s.host = host
	}
}

// WithPort sets the TCP port. Zero picks a free port.
func WithPort(port int) Option {
	return func(s *Server) {
		s.port = port
	}
}

func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = d
	}
}

func (s *Server) IsValid() error {
	switch {
	case s.handler == nil:
		return errors.Wrap(ErrInvalidServerConfig, "handler cannot be nil")
	case s.logger == nil:
		return errors.Wrap(ErrInvalidServerConfig, "logger cannot be nil")
	case s.port < 0 || s.port > 65535:
		return errors.Wrapf(ErrInvalidServerConfig, "port %d out of range", s.port)
	case s.shutdownTimeout <= 0:
		return errors.Wrap(ErrInvalidServerConfig, "shutdown timeout must be positive")
	default:
		return nil
	}
}

func New(opts ...Option) (*Server, error) {
	s := &Server{
		port:            DefaultPort,
		shutdownTimeout: DefaultShutdownTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	if err := s.IsValid(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) address() string {
	return net.JoinHostPort(s.host, strconv.Itoa(s.port))
}

// Listen binds the socket. It is the only transition from not listening to
// listening; a failure here is fatal for the caller.
func (s *Server) Listen() error {
	if s.listener != nil {
		return ErrAlreadyListening
	}

	ln, err := net.Listen("tcp", s.address())
	if err != nil {
		return errors.Wrapf(err, "failed to listen on %s", s.address())
	}
	s.listener = ln
	s.srv = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}

	s.logger.Info("App1 listening on port "+strconv.Itoa(s.Port()), "port", s.Port(), "addr", ln.Addr().String())
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Port returns the bound port, or the configured one before Listen.
func (s *Server) Port() int {
	if addr, ok := s.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return s.port
}

// Serve blocks until ctx is cancelled, then drains in-flight requests.
func (s *Server) Serve(ctx context.Context) error {
	if s.listener == nil {
		return ErrNotListening
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.Serve(s.listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "server stopped unexpectedly")
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "graceful shutdown failed")
	}
	<-errCh
	return nil
}

func (s *Server) Run(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve(ctx)
}
