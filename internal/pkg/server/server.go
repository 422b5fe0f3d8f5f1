package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/guestportal/internal/pkg/logger"
)

// DefaultShutdownTimeout bounds the whole graceful shutdown
const DefaultShutdownTimeout = 30 * time.Second

// GracefulServer wraps Echo server with graceful shutdown capabilities
type GracefulServer struct {
	echo     *echo.Echo
	port     int
	timeout  time.Duration
	shutdown *ShutdownManager
}

// NewGracefulServer creates a new server with graceful shutdown. Components
// registered on sm are closed after the HTTP server stops.
func NewGracefulServer(e *echo.Echo, port int, sm *ShutdownManager) *GracefulServer {
	if sm == nil {
		sm = NewShutdownManager()
	}
	return &GracefulServer{
		echo:     e,
		port:     port,
		timeout:  DefaultShutdownTimeout,
		shutdown: sm,
	}
}

// Start runs the server until SIGINT or SIGTERM
func (s *GracefulServer) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is done or the listener fails, then shuts down
func (s *GracefulServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		logger.Info("Starting HTTP server", logger.String("address", addr))
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("Received shutdown signal")
	case serveErr = <-errCh:
		logger.Error("HTTP server failed", logger.Err(serveErr))
	}

	if err := s.Shutdown(); err != nil {
		return err
	}
	return serveErr
}

// Shutdown stops the HTTP server and then every registered component
func (s *GracefulServer) Shutdown() error {
	logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	s.shutdown.Shutdown(ctx)
	logger.Info("Server shutdown completed")
	return nil
}

type component struct {
	name string
	fn   func(context.Context) error
}

// ShutdownManager closes registered components in reverse registration
// order, so that producers registered after their stores stop first
type ShutdownManager struct {
	mu         sync.Mutex
	components []component
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager() *ShutdownManager {
	return &ShutdownManager{}
}

// Register adds a cleanup function to be called during shutdown
func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.components = append(sm.components, component{name: name, fn: fn})
}

// Shutdown executes every registered function, continuing past failures,
// and returns the names of components that failed
func (sm *ShutdownManager) Shutdown(ctx context.Context) []string {
	sm.mu.Lock()
	components := make([]component, len(sm.components))
	copy(components, sm.components)
	sm.mu.Unlock()

	logger.Info("Starting graceful shutdown of components", logger.Int("components", len(components)))

	var failed []string
	for i := len(components) - 1; i >= 0; i-- {
		c := components[i]
		if err := c.fn(ctx); err != nil {
			logger.Error("Error during component shutdown",
				logger.String("component", c.name),
				logger.Err(err))
			failed = append(failed, c.name)
		}
	}

	logger.Info("All components shutdown completed")
	return failed
}
