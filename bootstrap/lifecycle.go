package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	logger "autonews/utils/logger"
)

// Run is the main application entry point. It initializes all dependencies,
// starts the server and background jobs, then waits for a shutdown signal.
func Run(ctx context.Context) error {
	log := logger.New(logger.LoadConfigFromEnv())

	log.Info("starting autonews service")

	deps, cleanup, err := BuildDependencies(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to build dependencies: %w", err)
	}
	defer cleanup()
	defer func() {
		if deps.RedisConsumer != nil {
			deps.RedisConsumer.Stop()
		}
	}()

	httpServer := NewHTTPServer(deps)
	StartHTTPServer(httpServer, deps, log)

	if err := startJobs(ctx, deps, log); err != nil {
		return fmt.Errorf("failed to start jobs: %w", err)
	}

	log.Info("autonews service started successfully")
	waitForShutdown(ctx, httpServer, deps, log)

	return nil
}

func startJobs(ctx context.Context, deps *Dependencies, log *slog.Logger) error {
	log.Info("starting background jobs")

	if err := deps.JobHandler.StartIngestJob(ctx); err != nil {
		return fmt.Errorf("failed to start ingest job: %w", err)
	}

	if err := deps.JobHandler.StartQueueJob(ctx); err != nil {
		return fmt.Errorf("failed to start queue job: %w", err)
	}

	// The rewrite job gates on model health; start it in the background so a
	// slow or absent model never blocks ingestion.
	go func() {
		if err := deps.JobHandler.StartRewriteJob(ctx); err != nil {
			log.Error("rewrite job not started", "error", err)
		}
	}()

	return nil
}

func waitForShutdown(ctx context.Context, httpServer interface{ Shutdown(context.Context) error }, deps *Dependencies, log *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case <-ctx.Done():
	}

	log.Info("shutting down autonews service")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), deps.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("error shutting down HTTP server", "error", err)
	}

	if err := deps.JobHandler.Stop(); err != nil {
		log.Error("error stopping job handler", "error", err)
	}

	log.Info("autonews service stopped")
}
