// Package htmltext converts article HTML into plain readable text.
package htmltext

import (
	"strings"

	"codeberg.org/readeck/go-readability/v2"
	"github.com/PuerkitoBio/goquery"
)

// ExtractReadableText extracts the main content of an article page and
// returns it as plain text paragraphs. Non-content elements (script, style,
// navigation, embeds) are removed before readability scoring.
func ExtractReadableText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	// Short-circuit if the payload is already plain text.
	if !strings.Contains(trimmed, "<") {
		return normalizeWhitespace(trimmed)
	}

	cleaned := trimmed

	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(trimmed)); err == nil {
		doc.Find("head, script, style, noscript, title, aside, nav, header, footer").Remove()
		doc.Find("iframe, embed, object, video, audio, canvas").Remove()
		doc.Find("[class*='social'], [class*='share'], [class*='advert'], [class*='promo']").Remove()

		if html, err := doc.Html(); err == nil && html != "" {
			cleaned = html
		}
	}

	article, err := readability.FromReader(strings.NewReader(cleaned), nil)
	if err != nil {
		return StripTags(cleaned)
	}

	var buf strings.Builder
	if err := article.RenderText(&buf); err != nil {
		return StripTags(cleaned)
	}

	text := normalizeWhitespace(buf.String())
	if text == "" {
		return StripTags(cleaned)
	}

	return text
}

// StripTags removes all markup from an HTML fragment and collapses the
// remaining text's whitespace. Entities are decoded by the parser.
func StripTags(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	if !strings.Contains(trimmed, "<") {
		return normalizeWhitespace(trimmed)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(trimmed))
	if err != nil {
		return normalizeWhitespace(manualStrip(trimmed))
	}

	doc.Find("script, style").Remove()

	return normalizeWhitespace(doc.Text())
}

// manualStrip is the fallback when the fragment is too broken to parse.
func manualStrip(raw string) string {
	var b strings.Builder

	inTag := false
	for _, r := range raw {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
			b.WriteRune(' ')
		case !inTag:
			b.WriteRune(r)
		}
	}

	return b.String()
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
