package config

import (
	"time"
)

// Config aggregates all service configuration blocks.
type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	HTTP      HTTPConfig      `json:"http"`
	Ingest    IngestConfig    `json:"ingest"`
	Queue     QueueConfig     `json:"queue"`
	Rewriter  RewriterConfig  `json:"rewriter"`
	Redis     RedisConfig     `json:"redis"`
	Retry     RetryConfig     `json:"retry"`
	RateLimit RateLimitConfig `json:"rate_limit"`
	Auth      AuthConfig      `json:"auth"`
}

type ServerConfig struct {
	Port            int           `json:"port" env:"SERVER_PORT" default:"8900"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
	ReadTimeout     time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"120s"` // rewrite calls can be slow
}

type DatabaseConfig struct {
	Host            string        `json:"host" env:"DB_HOST" default:"localhost"`
	Port            string        `json:"port" env:"DB_PORT" default:"5432"`
	User            string        `json:"user" env:"DB_USER" default:"autonews"`
	Password        string        `json:"password" env:"DB_PASSWORD" default:""`
	Name            string        `json:"name" env:"DB_NAME" default:"autonews"`
	MaxConns        int           `json:"max_conns" env:"DB_MAX_CONNS" default:"20"`
	MinConns        int           `json:"min_conns" env:"DB_MIN_CONNS" default:"5"`
	MaxConnLifetime time.Duration `json:"max_conn_lifetime" env:"DB_MAX_CONN_LIFETIME" default:"1h"`
	MaxConnIdleTime time.Duration `json:"max_conn_idle_time" env:"DB_MAX_CONN_IDLE_TIME" default:"30m"`
}

// HTTPConfig tunes the outbound client used for feed and page fetches.
type HTTPConfig struct {
	Timeout             time.Duration `json:"timeout" env:"HTTP_TIMEOUT" default:"30s"`
	MaxIdleConns        int           `json:"max_idle_conns" env:"HTTP_MAX_IDLE_CONNS" default:"10"`
	MaxIdleConnsPerHost int           `json:"max_idle_conns_per_host" env:"HTTP_MAX_IDLE_CONNS_PER_HOST" default:"2"`
	IdleConnTimeout     time.Duration `json:"idle_conn_timeout" env:"HTTP_IDLE_CONN_TIMEOUT" default:"90s"`
	MaxRedirects        int           `json:"max_redirects" env:"HTTP_MAX_REDIRECTS" default:"5"`
	UserAgent           string        `json:"user_agent" env:"HTTP_USER_AGENT" default:"AutoNews RSS Aggregator/1.0 (+https://autonews.example.com/bot)"`
}

type IngestConfig struct {
	JobInterval    time.Duration `json:"job_interval" env:"INGEST_JOB_INTERVAL" default:"5m"`
	DefaultExcerpt int           `json:"default_excerpt" env:"INGEST_EXCERPT_LENGTH" default:"200"`
	FetchFullBody  bool          `json:"fetch_full_body" env:"INGEST_FETCH_FULL_BODY" default:"false"`
	MaxUploadRows  int           `json:"max_upload_rows" env:"INGEST_MAX_UPLOAD_ROWS" default:"1000"`
}

type QueueConfig struct {
	BatchSize   int           `json:"batch_size" env:"QUEUE_BATCH_SIZE" default:"10"`
	JobInterval time.Duration `json:"job_interval" env:"QUEUE_JOB_INTERVAL" default:"1m"`
}

type RewriterConfig struct {
	Host        string        `json:"host" env:"REWRITER_HOST" default:"http://rewriter:11434"`
	APIPath     string        `json:"api_path" env:"REWRITER_API_PATH" default:"/api/generate"`
	Model       string        `json:"model" env:"REWRITER_MODEL" default:"llama-3.1-70b-versatile"`
	APIKey      string        `json:"api_key" env:"REWRITER_API_KEY" default:""`
	Timeout     time.Duration `json:"timeout" env:"REWRITER_TIMEOUT" default:"300s"`
	BatchSize   int           `json:"batch_size" env:"REWRITER_BATCH_SIZE" default:"5"`
	JobInterval time.Duration `json:"job_interval" env:"REWRITER_JOB_INTERVAL" default:"2m"`
}

type RedisConfig struct {
	URL           string        `json:"url" env:"REDIS_URL" default:"redis://localhost:6379"`
	StreamKey     string        `json:"stream_key" env:"REDIS_STREAM_KEY" default:"autonews:events:rewrite"`
	GroupName     string        `json:"group_name" env:"REDIS_GROUP_NAME" default:"autonews-group"`
	ConsumerName  string        `json:"consumer_name" env:"REDIS_CONSUMER_NAME" default:"autonews-1"`
	BatchSize     int64         `json:"batch_size" env:"REDIS_BATCH_SIZE" default:"10"`
	BlockTimeout  time.Duration `json:"block_timeout" env:"REDIS_BLOCK_TIMEOUT" default:"5s"`
	Enabled       bool          `json:"enabled" env:"REDIS_CONSUMER_ENABLED" default:"false"`
}

type RetryConfig struct {
	MaxAttempts   int           `json:"max_attempts" env:"RETRY_MAX_ATTEMPTS" default:"3"`
	BaseDelay     time.Duration `json:"base_delay" env:"RETRY_BASE_DELAY" default:"1s"`
	MaxDelay      time.Duration `json:"max_delay" env:"RETRY_MAX_DELAY" default:"30s"`
	BackoffFactor float64       `json:"backoff_factor" env:"RETRY_BACKOFF_FACTOR" default:"2.0"`
	JitterFactor  float64       `json:"jitter_factor" env:"RETRY_JITTER_FACTOR" default:"0.1"`
}

// RateLimitConfig throttles outbound fetches per remote domain.
type RateLimitConfig struct {
	DefaultInterval time.Duration `json:"default_interval" env:"RATE_LIMIT_DEFAULT_INTERVAL" default:"5s"`
	BurstSize       int           `json:"burst_size" env:"RATE_LIMIT_BURST_SIZE" default:"1"`
}

type AuthConfig struct {
	JWTSecret string `json:"jwt_secret" env:"AUTH_JWT_SECRET" default:""`
	Issuer    string `json:"issuer" env:"AUTH_ISSUER" default:"autonews"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8900,
			ShutdownTimeout: 30 * time.Second,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    120 * time.Second,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            "5432",
			User:            "autonews",
			Name:            "autonews",
			MaxConns:        20,
			MinConns:        5,
			MaxConnLifetime: time.Hour,
			MaxConnIdleTime: 30 * time.Minute,
		},
		HTTP: HTTPConfig{
			Timeout:             30 * time.Second,
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     90 * time.Second,
			MaxRedirects:        5,
			UserAgent:           "AutoNews RSS Aggregator/1.0 (+https://autonews.example.com/bot)",
		},
		Ingest: IngestConfig{
			JobInterval:    5 * time.Minute,
			DefaultExcerpt: 200,
			FetchFullBody:  false,
			MaxUploadRows:  1000,
		},
		Queue: QueueConfig{
			BatchSize:   10,
			JobInterval: time.Minute,
		},
		Rewriter: RewriterConfig{
			Host:        "http://rewriter:11434",
			APIPath:     "/api/generate",
			Model:       "llama-3.1-70b-versatile",
			Timeout:     300 * time.Second,
			BatchSize:   5,
			JobInterval: 2 * time.Minute,
		},
		Redis: RedisConfig{
			URL:          "redis://localhost:6379",
			StreamKey:    "autonews:events:rewrite",
			GroupName:    "autonews-group",
			ConsumerName: "autonews-1",
			BatchSize:    10,
			BlockTimeout: 5 * time.Second,
			Enabled:      false,
		},
		Retry: RetryConfig{
			MaxAttempts:   3,
			BaseDelay:     time.Second,
			MaxDelay:      30 * time.Second,
			BackoffFactor: 2.0,
			JitterFactor:  0.1,
		},
		RateLimit: RateLimitConfig{
			DefaultInterval: 5 * time.Second,
			BurstSize:       1,
		},
		Auth: AuthConfig{
			Issuer: "autonews",
		},
	}
}
