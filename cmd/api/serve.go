package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mentorpal/mentor-graphql-sub001/internal/infrastructure/di"
	"github.com/mentorpal/mentor-graphql-sub001/internal/interface/middleware"
	"github.com/mentorpal/mentor-graphql-sub001/internal/interface/router"
	"github.com/mentorpal/mentor-graphql-sub001/internal/interface/server"
)

// workerShutdownTimeout はバックグラウンドジョブの停止待ち時間です
const workerShutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server and background jobs",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize DI Container
	container, err := di.NewContainer(ctx, cfg)
	if err != nil {
		return fmt.Errorf("container: %w", err)
	}
	defer container.Close()

	handlers := di.NewHandlers(container)
	middlewares := di.NewMiddlewares(container)

	// Setup Server
	serverConfig := server.DefaultConfig()
	serverConfig.Port = cfg.Server.Port
	serverConfig.Debug = cfg.Server.Debug
	serverConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout
	srv := server.NewServer(serverConfig)
	e := srv.Echo()

	// Global middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Metrics(container.Metrics))
	e.Use(middleware.CORSWithOrigins(cfg.Security.CORSOrigins))
	e.Use(middlewares.JWTAuth.OptionalAuth())

	// Setup Router
	router.NewRouter(e, handlers, middlewares, container.Metrics.Handler()).Setup()

	// Start background workers
	workerMgr := di.NewWorkerManager(container)
	workerMgr.Start()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", srv.Address())
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		workerMgr.Shutdown(workerShutdownTimeout)
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		stop()
	}

	slog.Info("shutting down server...")
	workerMgr.Shutdown(workerShutdownTimeout)

	if err := srv.Shutdown(context.Background()); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}
