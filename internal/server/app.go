package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/philly/posts-api/internal/platform/logger"
	"github.com/philly/posts-api/internal/platform/seeder"
)

type App struct {
	server  *http.Server
	config  Config
	seeders *seeder.Orchestrator
	logger  logger.Logger
}

func NewApp(server *http.Server, config Config, seeders *seeder.Orchestrator, log logger.Logger) *App {
	return &App{
		server:  server,
		config:  config,
		seeders: seeders,
		logger:  log,
	}
}

// Run seeds the store, serves HTTP and shuts down gracefully once ctx is
// cancelled or SIGINT/SIGTERM arrives.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.config.SeedData {
		if err := a.seeders.RunAll(ctx); err != nil {
			return fmt.Errorf("failed to seed data: %w", err)
		}
	} else {
		a.logger.Info(ctx, "data seeding disabled")
	}

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info(ctx, "starting server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		a.logger.Info(context.Background(), "shutting down server", "timeout", a.config.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to gracefully shutdown server: %w", err)
		}
	}

	a.logger.Info(context.Background(), "server stopped")
	return nil
}
