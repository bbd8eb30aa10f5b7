package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer provides HTML sanitization for article bodies before storage.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer with the content policy used for stored
// article bodies.
func NewSanitizer() *Sanitizer {
	// UGCPolicy allows the usual article markup (p, a, strong, em, lists).
	p := bluemonday.UGCPolicy()

	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)

	return &Sanitizer{
		policy: p,
	}
}

// SanitizeHTML sanitizes the given HTML string and trims surrounding
// whitespace.
func (s *Sanitizer) SanitizeHTML(html string) string {
	return strings.TrimSpace(s.policy.Sanitize(html))
}
