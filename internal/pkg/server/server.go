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
	"github.com/piresc/chadpay/internal/pkg/logger"
)

// GracefulServer wraps Echo with signal-driven graceful shutdown
type GracefulServer struct {
	echo            *echo.Echo
	logger          *logger.ZapLogger
	port            int
	shutdownTimeout time.Duration
	cleanup         []func(context.Context) error
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, port int, shutdownTimeout time.Duration) *GracefulServer {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	return &GracefulServer{
		echo:            e,
		logger:          zapLogger,
		port:            port,
		shutdownTimeout: shutdownTimeout,
	}
}

// OnShutdown registers a cleanup func run after the HTTP server stops, in
// registration order
func (s *GracefulServer) OnShutdown(fn func(context.Context) error) {
	s.cleanup = append(s.cleanup, fn)
}

// Start serves until SIGINT or SIGTERM, then shuts down
func (s *GracefulServer) Start() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	return s.Run(quit)
}

// Run serves until stop receives, then shuts down
func (s *GracefulServer) Run(stop <-chan os.Signal) error {
	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		s.logger.Info("Starting HTTP server", logger.String("address", addr))

		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.logger.Error("Failed to start server", logger.Err(err))
		return err
	case sig := <-stop:
		s.logger.Info("Received shutdown signal", logger.String("signal", sig.String()))
	}

	return s.Shutdown()
}

// Shutdown stops accepting requests, waits for in-flight ones and runs cleanup
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	for i, fn := range s.cleanup {
		if err := fn(ctx); err != nil {
			s.logger.Error("Error during component shutdown",
				logger.Int("component", i),
				logger.Err(err))
		}
	}

	s.logger.Info("Server shutdown completed")
	return nil
}
