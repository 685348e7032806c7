package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/quadgate/tollpass/internal/pkg/logger"
	"github.com/quadgate/tollpass/internal/pkg/models"
)

// GracefulServer wraps an Echo server with signal-driven shutdown. SIGINT
// and SIGTERM both trigger a drain bounded by the configured timeout.
type GracefulServer struct {
	echo *echo.Echo
	cfg  models.ServerConfig
}

// NewGracefulServer creates a server from the simulator's configuration.
func NewGracefulServer(e *echo.Echo, cfg models.ServerConfig) *GracefulServer {
	return &GracefulServer{echo: e, cfg: cfg}
}

// Start runs the server and blocks until a shutdown signal arrives.
func (s *GracefulServer) Start() error {
	go func() {
		addr := fmt.Sprintf(":%d", s.cfg.Port)
		logger.Info("starting HTTP server", logger.Fields{"address": addr})

		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server exited", logger.Fields{"error": err.Error()})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	sig := <-quit
	logger.Info("received shutdown signal", logger.Fields{"signal": sig.String()})

	return s.Shutdown()
}

// Shutdown drains in-flight requests within the configured timeout.
func (s *GracefulServer) Shutdown() error {
	timeout := time.Duration(s.cfg.ShutdownTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server shutdown complete", logger.Fields{})
	return nil
}
