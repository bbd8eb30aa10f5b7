package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"autonews/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	return entry
}

func TestNewWithWriter_JSONFormat(t *testing.T) {
	var buf bytes.Buffer

	log := logger.NewWithWriter(&buf, &logger.Config{Level: "info", ServiceName: "autonews"})
	log.Info("feed fetched", "source_id", "src-1", "items", 12)

	entry := decodeLogLine(t, &buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "feed fetched", entry["msg"])
	assert.Equal(t, "autonews", entry["service"])
	assert.Equal(t, "src-1", entry["source_id"])
	assert.Equal(t, float64(12), entry["items"])
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	log := logger.NewWithWriter(&buf, &logger.Config{Level: "error", ServiceName: "autonews"})

	log.Info("suppressed")
	assert.Empty(t, buf.String())

	log.Error("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestFromContext_TracingFields(t *testing.T) {
	var buf bytes.Buffer

	log := logger.NewWithWriter(&buf, &logger.Config{Level: "info", ServiceName: "autonews"})

	ctx := logger.WithRequestID(context.Background(), "req-123")
	ctx = logger.WithOperation(ctx, "POST /api/v1/admin/upload")

	logger.FromContext(ctx, log).InfoContext(ctx, "upload accepted")

	entry := decodeLogLine(t, &buf)
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "POST /api/v1/admin/upload", entry["operation"])
}

func TestFromContext_NoFields(t *testing.T) {
	var buf bytes.Buffer

	log := logger.NewWithWriter(&buf, &logger.Config{Level: "info", ServiceName: "autonews"})

	logger.FromContext(context.Background(), log).Info("plain")

	entry := decodeLogLine(t, &buf)
	assert.NotContains(t, entry, "request_id")
	assert.NotContains(t, entry, "operation")
}
