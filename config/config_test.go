package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8900, cfg.Server.Port)
	assert.Equal(t, 10, cfg.Queue.BatchSize)
	assert.Equal(t, 200, cfg.Ingest.DefaultExcerpt)
	assert.Equal(t, 5, cfg.Rewriter.BatchSize)
	assert.Equal(t, 5*time.Second, cfg.RateLimit.DefaultInterval)
	assert.False(t, cfg.Redis.Enabled)
	assert.Contains(t, cfg.HTTP.UserAgent, "AutoNews")
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("QUEUE_BATCH_SIZE", "25")
	t.Setenv("INGEST_JOB_INTERVAL", "90s")
	t.Setenv("REDIS_CONSUMER_ENABLED", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, 25, cfg.Queue.BatchSize)
	assert.Equal(t, 90*time.Second, cfg.Ingest.JobInterval)
	assert.True(t, cfg.Redis.Enabled)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"invalid port", "SERVER_PORT", "not-a-number"},
		{"port out of range", "SERVER_PORT", "70000"},
		{"invalid duration", "HTTP_TIMEOUT", "fast"},
		{"invalid batch size", "QUEUE_BATCH_SIZE", "-5"},
		{"invalid bool", "INGEST_FETCH_FULL_BODY", "si"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestValidateConfig_Rules(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, validateConfig(cfg))

	cfg.Database.MinConns = 50
	assert.Error(t, validateConfig(cfg), "min_conns above max_conns must fail")

	cfg = defaultConfig()
	cfg.HTTP.UserAgent = ""
	assert.Error(t, validateConfig(cfg))

	cfg = defaultConfig()
	cfg.Retry.BackoffFactor = 0.5
	assert.Error(t, validateConfig(cfg))
}
