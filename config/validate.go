package config

import (
	"fmt"
)

func validateConfig(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Database.MaxConns < cfg.Database.MinConns {
		return fmt.Errorf("database max_conns (%d) must be >= min_conns (%d)",
			cfg.Database.MaxConns, cfg.Database.MinConns)
	}

	if cfg.HTTP.Timeout <= 0 {
		return fmt.Errorf("HTTP timeout must be positive, got %v", cfg.HTTP.Timeout)
	}

	if cfg.HTTP.UserAgent == "" {
		return fmt.Errorf("HTTP user agent cannot be empty")
	}

	if cfg.Ingest.DefaultExcerpt <= 0 {
		return fmt.Errorf("excerpt length must be positive, got %d", cfg.Ingest.DefaultExcerpt)
	}

	if cfg.Queue.BatchSize <= 0 {
		return fmt.Errorf("queue batch size must be positive, got %d", cfg.Queue.BatchSize)
	}

	if cfg.Rewriter.Host == "" {
		return fmt.Errorf("rewriter host cannot be empty")
	}

	if cfg.Rewriter.BatchSize <= 0 {
		return fmt.Errorf("rewriter batch size must be positive, got %d", cfg.Rewriter.BatchSize)
	}

	if cfg.Retry.MaxAttempts <= 0 {
		return fmt.Errorf("retry max attempts must be positive, got %d", cfg.Retry.MaxAttempts)
	}

	if cfg.Retry.BackoffFactor < 1.0 {
		return fmt.Errorf("retry backoff factor must be >= 1.0, got %f", cfg.Retry.BackoffFactor)
	}

	if cfg.RateLimit.DefaultInterval < 0 {
		return fmt.Errorf("rate limit interval cannot be negative, got %v", cfg.RateLimit.DefaultInterval)
	}

	return nil
}
