// Command api runs the items HTTP service.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"itemsvc/internal/config"
	"itemsvc/internal/database"
	"itemsvc/internal/handler"
	loggerPkg "itemsvc/internal/logger"
	"itemsvc/internal/middleware"
	"itemsvc/internal/repository"
	"itemsvc/internal/router"
	"itemsvc/internal/server"
	"itemsvc/internal/service"
)

// shutdownTimeout bounds how long inflight requests may drain.
const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.New()
	if err != nil {
		// config.New logs fatally on its own failures; this guards the
		// signature staying honest if that ever changes.
		os.Exit(1)
	}

	logger := loggerPkg.New(cfg)

	loggerService, err := loggerPkg.NewLoggerService(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize logger service")
	}

	ctx := context.Background()

	if err := database.Migrate(ctx, logger, cfg); err != nil {
		logger.Fatal().Err(err).Msg("failed to run database migrations")
	}

	srv, err := server.New(cfg, logger, loggerService)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewServices(srv, repos)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize services")
	}

	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	e := router.New(srv, handlers, middlewares)
	srv.SetupHTTPServer(e)

	// Serve in the background; the main goroutine waits for a signal.
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	select {
	case err := <-errCh:
		logger.Fatal().Err(err).Msg("server failed")
	case <-stop.Done():
	}

	logger.Info().Msg("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(ctx, shutdownTimeout)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown did not complete cleanly")
		os.Exit(1)
	}

	logger.Info().Msg("shutdown complete")
}
