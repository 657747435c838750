package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeHTMLStripsScripts(t *testing.T) {
	out := SanitizeHTML(`<p>hello</p><script>alert(1)</script>`)
	assert.Contains(t, out, "<p>hello</p>")
	assert.NotContains(t, out, "script")
	assert.NotContains(t, out, "alert")
}

func TestSanitizeHTMLKeepsFormatting(t *testing.T) {
	in := `<h2>Title</h2><p><strong>bold</strong> and <em>italic</em></p><ul><li>one</li></ul>`
	assert.Equal(t, in, SanitizeHTML(in))
}

func TestSanitizeHTMLDropsEventHandlers(t *testing.T) {
	out := SanitizeHTML(`<img src="https://example.com/x.png" onerror="alert(1)">`)
	assert.Contains(t, out, "img")
	assert.NotContains(t, out, "onerror")
}

func TestSanitizeHTMLDropsJavascriptURLs(t *testing.T) {
	out := SanitizeHTML(`<a href="javascript:alert(1)">x</a>`)
	assert.NotContains(t, out, "javascript:")
}

func TestSanitizeHTMLDropsIframes(t *testing.T) {
	out := SanitizeHTML(`<p>ok</p><iframe src="https://evil.example.com"></iframe>`)
	assert.Equal(t, "<p>ok</p>", out)
}
