package utils_test

import (
	"testing"

	"autonews/utils"

	"github.com/stretchr/testify/assert"
)

func TestSanitizer_SanitizeHTML(t *testing.T) {
	s := utils.NewSanitizer()

	tests := map[string]struct {
		input    string
		contains []string
		excludes []string
	}{
		"keeps article markup": {
			input:    "<p>Hello <strong>World</strong></p>",
			contains: []string{"<p>", "<strong>World</strong>"},
		},
		"strips script tags": {
			input:    `<p>Safe</p><script>alert("x")</script>`,
			contains: []string{"<p>Safe</p>"},
			excludes: []string{"<script>", "alert"},
		},
		"strips event handlers": {
			input:    `<p onclick="steal()">Click</p>`,
			contains: []string{"Click"},
			excludes: []string{"onclick"},
		},
		"adds rel nofollow to links": {
			input:    `<a href="https://example.com">ref</a>`,
			contains: []string{"nofollow"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := s.SanitizeHTML(tc.input)

			for _, want := range tc.contains {
				assert.Contains(t, got, want)
			}

			for _, avoid := range tc.excludes {
				assert.NotContains(t, got, avoid)
			}
		})
	}
}

func TestSanitizer_TrimsWhitespace(t *testing.T) {
	s := utils.NewSanitizer()

	assert.Equal(t, "<p>Body</p>", s.SanitizeHTML("  <p>Body</p>\n\n"))
}
