package service

import (
	"log/slog"
	"os"
	"time"

	"autonews/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError, // Only errors in tests
	}))
}

func testConfig() *config.Config {
	return &config.Config{
		Ingest: config.IngestConfig{
			JobInterval:    5 * time.Minute,
			DefaultExcerpt: 200,
			MaxUploadRows:  1000,
		},
		Queue: config.QueueConfig{
			BatchSize:   10,
			JobInterval: time.Minute,
		},
		Rewriter: config.RewriterConfig{
			Host:      "http://localhost:11434",
			APIPath:   "/api/generate",
			Model:     "test-model",
			Timeout:   time.Second,
			BatchSize: 5,
		},
		HTTP: config.HTTPConfig{
			Timeout:      5 * time.Second,
			MaxRedirects: 5,
			UserAgent:    "AutoNews RSS Aggregator/1.0 (+https://autonews.example.com/bot)",
		},
		RateLimit: config.RateLimitConfig{
			DefaultInterval: time.Millisecond,
		},
		Retry: config.RetryConfig{
			MaxAttempts:   2,
			BaseDelay:     time.Millisecond,
			MaxDelay:      5 * time.Millisecond,
			BackoffFactor: 2.0,
			JitterFactor:  0.1,
		},
	}
}
