package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"autonews/config"
	"autonews/utils"

	"github.com/stretchr/testify/assert"
)

func TestRewriteAPIRepository_InputValidation(t *testing.T) {
	repo := NewRewriteAPIRepository(&config.RewriterConfig{
		Host:    "http://localhost:1",
		APIPath: "/api/generate",
		Model:   "test",
		Timeout: time.Second,
	}, testLogger())

	_, err := repo.RewriteArticle(context.Background(), "", "content")
	assert.Error(t, err)

	_, err = repo.RewriteArticle(context.Background(), "title", "   ")
	assert.Error(t, err)
}

func TestRewriteAPIRepository_CircuitOpensAfterFailures(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	repo := NewRewriteAPIRepository(&config.RewriterConfig{
		Host:    server.URL,
		APIPath: "/api/generate",
		Model:   "test",
		Timeout: time.Second,
	}, testLogger())

	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.RewriteArticle(ctx, "title", "content")
		assert.Error(t, err)
	}

	// Circuit is now open, further calls never reach the server.
	_, err := repo.RewriteArticle(ctx, "title", "content")
	assert.ErrorIs(t, err, utils.ErrCircuitOpen)
	assert.Equal(t, int32(3), calls.Load())
}
