package htmltext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text passes through", "Hello World", "Hello World"},
		{"simple markup", "<p>Hello <b>World</b></p>", "Hello World"},
		{"nested markup", "<div><p>First</p><p>Second</p></div>", "First Second"},
		{"script removed", "<p>Visible</p><script>alert(1)</script>", "Visible"},
		{"style removed", "<style>p{color:red}</style><p>Text</p>", "Text"},
		{"whitespace collapsed", "<p>Hello\n\n   World</p>", "Hello World"},
		{"entities decoded", "<p>Fish &amp; Chips</p>", "Fish & Chips"},
		{"empty input", "", ""},
		{"whitespace only", "   \n\t  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripTags(tt.input))
		})
	}
}

func TestExtractReadableText_PlainText(t *testing.T) {
	got := ExtractReadableText("Just a   plain\nsentence.")
	assert.Equal(t, "Just a plain sentence.", got)
}

func TestExtractReadableText_RemovesChrome(t *testing.T) {
	html := `<html><head><title>t</title></head><body>
		<nav>Site navigation</nav>
		<article><p>The actual story paragraph, long enough to be scored as body content by the extractor when it runs over this document.</p>
		<p>A second paragraph with more story text so the content wins.</p></article>
		<footer>Copyright</footer>
	</body></html>`

	got := ExtractReadableText(html)
	assert.Contains(t, got, "actual story paragraph")
	assert.NotContains(t, got, "Site navigation")
	assert.NotContains(t, got, "Copyright")
}

func TestExtractReadableText_Empty(t *testing.T) {
	assert.Equal(t, "", ExtractReadableText(""))
}
