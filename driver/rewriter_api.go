// ABOUTME: This file implements the HTTP client for the external rewrite model
// ABOUTME: It sends a structured-JSON prompt and parses the model output
package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"autonews/config"
	"autonews/domain"
)

type rewritePayload struct {
	Model     string         `json:"model"`
	Prompt    string         `json:"prompt"`
	Options   rewriteOptions `json:"options"`
	KeepAlive int            `json:"keep_alive"`
	Stream    bool           `json:"stream"`
}

type rewriteOptions struct {
	Stop        []string `json:"stop"`
	Temperature float64  `json:"temperature"`
	TopP        float64  `json:"top_p"`
	NumPredict  int      `json:"num_predict"`
	NumCtx      int      `json:"num_ctx"`
}

type rewriteAPIResponse struct {
	Model      string `json:"model"`
	Response   string `json:"response"`
	DoneReason string `json:"done_reason"`
	Done       bool   `json:"done"`
}

const rewritePromptTemplate = `You are a professional news editor. Rewrite the article below into an original piece that preserves every fact but uses entirely new wording, suitable for direct publication.

Respond with a single JSON object and nothing else, using exactly these keys:
{
  "title": "rewritten headline, max 100 characters",
  "content": "full rewritten article body in plain paragraphs",
  "meta_description": "SEO description, max 160 characters",
  "keywords": ["5 to 8 relevant keywords"],
  "category": "one broad topic word such as Technology, Business, Sports, Politics, Health, Science or Entertainment",
  "summary": "2-3 sentence summary"
}

ORIGINAL TITLE:
%s

ORIGINAL ARTICLE:
---
%s
---`

// RewriteArticleAPIClient sends one article to the rewrite model and parses
// the structured result. Overload responses map to sentinel errors so callers
// can back off instead of failing the entry.
func RewriteArticleAPIClient(ctx context.Context, title, content string, cfg *config.RewriterConfig, client *http.Client, logger *slog.Logger) (*domain.RewriteResult, error) {
	prompt := fmt.Sprintf(rewritePromptTemplate, title, content)

	apiURL := cfg.Host + cfg.APIPath

	payload := rewritePayload{
		Model:     cfg.Model,
		Prompt:    prompt,
		Stream:    false,
		KeepAlive: -1,
		Options: rewriteOptions{
			Temperature: 0.3,
			TopP:        0.9,
			NumPredict:  4096,
			NumCtx:      16384,
			Stop:        []string{"<|user|>", "<|system|>"},
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rewrite payload: %w", err)
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctxWithTimeout, http.MethodPost, apiURL, strings.NewReader(string(jsonData)))
	if err != nil {
		return nil, fmt.Errorf("failed to create rewrite request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.APIKey)
	}

	logger.DebugContext(ctx, "calling rewrite model",
		"api_url", apiURL,
		"model", cfg.Model,
		"content_length", len(content))

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rewrite request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.ErrorContext(ctx, "failed to close response body", "error", err)
		}
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return nil, domain.ErrServiceOverloaded
	case http.StatusServiceUnavailable:
		return nil, domain.ErrRewriterUnavailable
	default:
		bodyBytes, _ := io.ReadAll(resp.Body)
		logger.ErrorContext(ctx, "rewrite API returned non-200 status",
			"status", resp.Status, "body", string(bodyBytes))

		return nil, fmt.Errorf("rewrite API request failed with status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read rewrite response: %w", err)
	}

	var apiResponse rewriteAPIResponse
	if err := json.Unmarshal(body, &apiResponse); err != nil {
		return nil, fmt.Errorf("failed to parse rewrite API response: %w", err)
	}

	if !apiResponse.Done {
		logger.WarnContext(ctx, "received incomplete response from rewrite API",
			"done_reason", apiResponse.DoneReason)
	}

	result, err := parseRewriteOutput(apiResponse.Response)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "rewrite generated",
		"model", apiResponse.Model,
		"title_length", len(result.Title),
		"content_length", len(result.Content))

	return result, nil
}

// parseRewriteOutput extracts the JSON object from the model output. Models
// sometimes wrap the object in markdown fences or prefix it with chatter, so
// the object is located by its braces rather than unmarshalled directly.
func parseRewriteOutput(raw string) (*domain.RewriteResult, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")

	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("rewrite output contains no JSON object")
	}

	var result domain.RewriteResult
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &result); err != nil {
		return nil, fmt.Errorf("failed to parse rewrite result: %w", err)
	}

	if strings.TrimSpace(result.Title) == "" || strings.TrimSpace(result.Content) == "" {
		return nil, fmt.Errorf("rewrite result is missing title or content")
	}

	return &result, nil
}

// RewriterHealthCheck sends a minimal generation request to verify the model
// is loaded and answering.
func RewriterHealthCheck(ctx context.Context, cfg *config.RewriterConfig, client *http.Client) error {
	payload := rewritePayload{
		Model:  cfg.Model,
		Prompt: "Respond with OK",
		Stream: false,
		Options: rewriteOptions{
			Temperature: 0.0,
			NumPredict:  5,
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal health check payload: %w", err)
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctxWithTimeout, http.MethodPost, cfg.Host+cfg.APIPath, strings.NewReader(string(jsonData)))
	if err != nil {
		return fmt.Errorf("failed to create health check request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.APIKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("rewriter health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("rewriter health check returned status: %s", resp.Status)
	}

	return nil
}
