package repository

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"autonews/config"
	"autonews/domain"
	"autonews/driver"
	"autonews/utils"
)

type rewriteAPIRepository struct {
	logger  *slog.Logger
	config  *config.RewriterConfig
	client  *http.Client
	breaker *utils.CircuitBreaker
}

// NewRewriteAPIRepository creates the client-side repository for the external
// rewrite model. Repeated failures open a circuit breaker so a dead model
// does not stall every worker for its full timeout.
func NewRewriteAPIRepository(cfg *config.RewriterConfig, logger *slog.Logger) RewriteAPIRepository {
	return &rewriteAPIRepository{
		logger: logger,
		config: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		breaker: utils.NewCircuitBreaker(3, 30*time.Second),
	}
}

// RewriteArticle sends one article through the rewrite model.
func (r *rewriteAPIRepository) RewriteArticle(ctx context.Context, title, content string) (*domain.RewriteResult, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("article title cannot be empty")
	}

	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("article content cannot be empty")
	}

	var result *domain.RewriteResult

	err := r.breaker.Call(func() error {
		var callErr error

		result, callErr = driver.RewriteArticleAPIClient(ctx, title, content, r.config, r.client, r.logger)

		return callErr
	})
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to rewrite article", "error", err)
		return nil, fmt.Errorf("failed to rewrite article: %w", err)
	}

	return result, nil
}

// CheckHealth verifies the rewrite model is answering.
func (r *rewriteAPIRepository) CheckHealth(ctx context.Context) error {
	if err := driver.RewriterHealthCheck(ctx, r.config, r.client); err != nil {
		return fmt.Errorf("rewriter health check failed: %w", err)
	}

	return nil
}
