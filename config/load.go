package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// LoadConfig builds the configuration from defaults and overrides provided
// via environment variables.
func LoadConfig() (*Config, error) {
	config := defaultConfig()

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func loadFromEnv(config *Config) error {
	if err := loadServerConfig(&config.Server); err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}

	if err := loadDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	if err := loadHTTPConfig(&config.HTTP); err != nil {
		return fmt.Errorf("failed to load HTTP config: %w", err)
	}

	if err := loadIngestConfig(&config.Ingest); err != nil {
		return fmt.Errorf("failed to load ingest config: %w", err)
	}

	if err := loadQueueConfig(&config.Queue); err != nil {
		return fmt.Errorf("failed to load queue config: %w", err)
	}

	if err := loadRewriterConfig(&config.Rewriter); err != nil {
		return fmt.Errorf("failed to load rewriter config: %w", err)
	}

	if err := loadRedisConfig(&config.Redis); err != nil {
		return fmt.Errorf("failed to load redis config: %w", err)
	}

	if err := loadRetryConfig(&config.Retry); err != nil {
		return fmt.Errorf("failed to load retry config: %w", err)
	}

	if err := loadRateLimitConfig(&config.RateLimit); err != nil {
		return fmt.Errorf("failed to load rate limit config: %w", err)
	}

	loadAuthConfig(&config.Auth)

	return nil
}

func loadServerConfig(cfg *ServerConfig) error {
	var err error

	if cfg.Port, err = getEnvInt("SERVER_PORT", cfg.Port); err != nil {
		return err
	}

	if cfg.ShutdownTimeout, err = getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout); err != nil {
		return err
	}

	if cfg.ReadTimeout, err = getEnvDuration("SERVER_READ_TIMEOUT", cfg.ReadTimeout); err != nil {
		return err
	}

	if cfg.WriteTimeout, err = getEnvDuration("SERVER_WRITE_TIMEOUT", cfg.WriteTimeout); err != nil {
		return err
	}

	return nil
}

func loadDatabaseConfig(cfg *DatabaseConfig) error {
	var err error

	cfg.Host = getEnvString("DB_HOST", cfg.Host)
	cfg.Port = getEnvString("DB_PORT", cfg.Port)
	cfg.User = getEnvString("DB_USER", cfg.User)
	cfg.Password = getEnvString("DB_PASSWORD", cfg.Password)
	cfg.Name = getEnvString("DB_NAME", cfg.Name)

	if cfg.MaxConns, err = getEnvInt("DB_MAX_CONNS", cfg.MaxConns); err != nil {
		return err
	}

	if cfg.MinConns, err = getEnvInt("DB_MIN_CONNS", cfg.MinConns); err != nil {
		return err
	}

	if cfg.MaxConnLifetime, err = getEnvDuration("DB_MAX_CONN_LIFETIME", cfg.MaxConnLifetime); err != nil {
		return err
	}

	if cfg.MaxConnIdleTime, err = getEnvDuration("DB_MAX_CONN_IDLE_TIME", cfg.MaxConnIdleTime); err != nil {
		return err
	}

	return nil
}

func loadHTTPConfig(cfg *HTTPConfig) error {
	var err error

	if cfg.Timeout, err = getEnvDuration("HTTP_TIMEOUT", cfg.Timeout); err != nil {
		return err
	}

	if cfg.MaxIdleConns, err = getEnvInt("HTTP_MAX_IDLE_CONNS", cfg.MaxIdleConns); err != nil {
		return err
	}

	if cfg.MaxIdleConnsPerHost, err = getEnvInt("HTTP_MAX_IDLE_CONNS_PER_HOST", cfg.MaxIdleConnsPerHost); err != nil {
		return err
	}

	if cfg.IdleConnTimeout, err = getEnvDuration("HTTP_IDLE_CONN_TIMEOUT", cfg.IdleConnTimeout); err != nil {
		return err
	}

	if cfg.MaxRedirects, err = getEnvInt("HTTP_MAX_REDIRECTS", cfg.MaxRedirects); err != nil {
		return err
	}

	cfg.UserAgent = getEnvString("HTTP_USER_AGENT", cfg.UserAgent)

	return nil
}

func loadIngestConfig(cfg *IngestConfig) error {
	var err error

	if cfg.JobInterval, err = getEnvDuration("INGEST_JOB_INTERVAL", cfg.JobInterval); err != nil {
		return err
	}

	if cfg.DefaultExcerpt, err = getEnvInt("INGEST_EXCERPT_LENGTH", cfg.DefaultExcerpt); err != nil {
		return err
	}

	if cfg.FetchFullBody, err = getEnvBool("INGEST_FETCH_FULL_BODY", cfg.FetchFullBody); err != nil {
		return err
	}

	if cfg.MaxUploadRows, err = getEnvInt("INGEST_MAX_UPLOAD_ROWS", cfg.MaxUploadRows); err != nil {
		return err
	}

	return nil
}

func loadQueueConfig(cfg *QueueConfig) error {
	var err error

	if cfg.BatchSize, err = getEnvInt("QUEUE_BATCH_SIZE", cfg.BatchSize); err != nil {
		return err
	}

	if cfg.JobInterval, err = getEnvDuration("QUEUE_JOB_INTERVAL", cfg.JobInterval); err != nil {
		return err
	}

	return nil
}

func loadRewriterConfig(cfg *RewriterConfig) error {
	var err error

	cfg.Host = getEnvString("REWRITER_HOST", cfg.Host)
	cfg.APIPath = getEnvString("REWRITER_API_PATH", cfg.APIPath)
	cfg.Model = getEnvString("REWRITER_MODEL", cfg.Model)
	cfg.APIKey = getEnvString("REWRITER_API_KEY", cfg.APIKey)

	if cfg.Timeout, err = getEnvDuration("REWRITER_TIMEOUT", cfg.Timeout); err != nil {
		return err
	}

	if cfg.BatchSize, err = getEnvInt("REWRITER_BATCH_SIZE", cfg.BatchSize); err != nil {
		return err
	}

	if cfg.JobInterval, err = getEnvDuration("REWRITER_JOB_INTERVAL", cfg.JobInterval); err != nil {
		return err
	}

	return nil
}

func loadRedisConfig(cfg *RedisConfig) error {
	var err error

	cfg.URL = getEnvString("REDIS_URL", cfg.URL)
	cfg.StreamKey = getEnvString("REDIS_STREAM_KEY", cfg.StreamKey)
	cfg.GroupName = getEnvString("REDIS_GROUP_NAME", cfg.GroupName)
	cfg.ConsumerName = getEnvString("REDIS_CONSUMER_NAME", cfg.ConsumerName)

	if cfg.BlockTimeout, err = getEnvDuration("REDIS_BLOCK_TIMEOUT", cfg.BlockTimeout); err != nil {
		return err
	}

	batch, err := getEnvInt("REDIS_BATCH_SIZE", int(cfg.BatchSize))
	if err != nil {
		return err
	}
	cfg.BatchSize = int64(batch)

	if cfg.Enabled, err = getEnvBool("REDIS_CONSUMER_ENABLED", cfg.Enabled); err != nil {
		return err
	}

	return nil
}

func loadRetryConfig(cfg *RetryConfig) error {
	var err error

	if cfg.MaxAttempts, err = getEnvInt("RETRY_MAX_ATTEMPTS", cfg.MaxAttempts); err != nil {
		return err
	}

	if cfg.BaseDelay, err = getEnvDuration("RETRY_BASE_DELAY", cfg.BaseDelay); err != nil {
		return err
	}

	if cfg.MaxDelay, err = getEnvDuration("RETRY_MAX_DELAY", cfg.MaxDelay); err != nil {
		return err
	}

	if cfg.BackoffFactor, err = getEnvFloat("RETRY_BACKOFF_FACTOR", cfg.BackoffFactor); err != nil {
		return err
	}

	if cfg.JitterFactor, err = getEnvFloat("RETRY_JITTER_FACTOR", cfg.JitterFactor); err != nil {
		return err
	}

	return nil
}

func loadRateLimitConfig(cfg *RateLimitConfig) error {
	var err error

	if cfg.DefaultInterval, err = getEnvDuration("RATE_LIMIT_DEFAULT_INTERVAL", cfg.DefaultInterval); err != nil {
		return err
	}

	if cfg.BurstSize, err = getEnvInt("RATE_LIMIT_BURST_SIZE", cfg.BurstSize); err != nil {
		return err
	}

	return nil
}

func loadAuthConfig(cfg *AuthConfig) {
	cfg.JWTSecret = getEnvString("AUTH_JWT_SECRET", cfg.JWTSecret)
	cfg.Issuer = getEnvString("AUTH_ISSUER", cfg.Issuer)
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %w", key, err)
	}

	return parsed, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float value for %s: %w", key, err)
	}

	return parsed, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid boolean value for %s: %w", key, err)
	}

	return parsed, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration value for %s: %w", key, err)
	}

	return parsed, nil
}
