package service

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleFetcher_ValidateURL(t *testing.T) {
	svc := NewArticleFetcherService(testConfig(), testLogger())

	tests := map[string]struct {
		url     string
		wantErr bool
	}{
		"valid https url":        {"https://example.com/article", false},
		"valid http url":         {"http://example.com/article", false},
		"empty url":              {"", true},
		"unsupported scheme":     {"ftp://example.com/file", true},
		"missing host":           {"https:///path-only", true},
		"localhost blocked":      {"http://localhost/admin", true},
		"loopback ip blocked":    {"http://127.0.0.1/admin", true},
		"private ip blocked":     {"http://192.168.1.10/router", true},
		"ten dot blocked":        {"http://10.0.0.5/internal", true},
		"link local blocked":     {"http://169.254.169.254/latest/meta-data", true},
		"metadata host blocked":  {"http://metadata.google.internal/computeMetadata", true},
		"internal suffix":        {"http://db.corp/stats", true},
		"dot local suffix":       {"http://printer.local/jobs", true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := svc.ValidateURL(tt.url)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestArticleFetcher_FetchRejectsInvalidURL(t *testing.T) {
	svc := NewArticleFetcherService(testConfig(), testLogger())

	_, err := svc.FetchArticle(context.Background(), "http://127.0.0.1/loop")

	assert.Error(t, err)
}

func TestIsRetryableFetchError(t *testing.T) {
	tests := map[string]struct {
		err  error
		want bool
	}{
		"server error status":  {&transientFetchError{status: "503 Service Unavailable"}, true},
		"dns failure":          {&net.DNSError{Err: "no such host", Name: "news.example.com"}, true},
		"context cancellation": {context.Canceled, false},
		"deadline exceeded":    {context.DeadlineExceeded, false},
		"plain failure":        {errors.New("article fetch returned status: 404 Not Found"), false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableFetchError(tt.err))
		})
	}
}

func TestArticleFetcher_FetchOnceStatusHandling(t *testing.T) {
	svc := NewArticleFetcherService(testConfig(), testLogger()).(*articleFetcherService)

	t.Run("server error is transient", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := svc.fetchOnce(context.Background(), server.URL)

		var transient *transientFetchError
		assert.ErrorAs(t, err, &transient)
	})

	t.Run("client error is permanent", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := svc.fetchOnce(context.Background(), server.URL)

		require.Error(t, err)
		assert.False(t, isRetryableFetchError(err))
	})

	t.Run("ok response yields readable text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html><body><article><p>Breaking story body.</p></article></body></html>"))
		}))
		defer server.Close()

		text, err := svc.fetchOnce(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Contains(t, text, "Breaking story body.")
	})
}
