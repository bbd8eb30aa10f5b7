package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"autonews/repository"
)

const healthCheckInterval = 10 * time.Second

type healthCheckerService struct {
	apiRepo repository.RewriteAPIRepository
	logger  *slog.Logger
}

// NewHealthCheckerService creates the rewrite model health checker.
func NewHealthCheckerService(apiRepo repository.RewriteAPIRepository, logger *slog.Logger) HealthCheckerService {
	return &healthCheckerService{
		apiRepo: apiRepo,
		logger:  logger,
	}
}

// CheckRewriterHealth runs one health probe.
func (s *healthCheckerService) CheckRewriterHealth(ctx context.Context) error {
	if err := s.apiRepo.CheckHealth(ctx); err != nil {
		s.logger.WarnContext(ctx, "rewriter health check failed", "error", err)
		return err
	}

	return nil
}

// WaitForHealthy blocks until the rewrite model answers or the context is
// cancelled. Used at startup before the rewrite job loop begins.
func (s *healthCheckerService) WaitForHealthy(ctx context.Context) error {
	if err := s.CheckRewriterHealth(ctx); err == nil {
		return nil
	}

	ticker := time.NewTicker(healthCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("health wait cancelled: %w", ctx.Err())
		case <-ticker.C:
			if err := s.CheckRewriterHealth(ctx); err == nil {
				s.logger.InfoContext(ctx, "rewriter is healthy")
				return nil
			}
		}
	}
}
