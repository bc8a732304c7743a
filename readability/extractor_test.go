package readability_test

import (
	"testing"

	"github.com/fwojciec/marrow/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_EmptyInputIsAbsent(t *testing.T) {
	t.Parallel()

	frag := readability.NewExtractor().ExtractContent("", "https://example.com/")

	assert.False(t, frag.Found)
}

func TestExtractor_KeepsMainArticleContent(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/home">Home</a></nav>
<article><p>This is the important article paragraph text that must be kept in the output fragment.</p></article>
<footer><p>Footer</p></footer>
</body>
</html>`

	frag := readability.NewExtractor().ExtractContent(html, "https://example.com/a")

	require.True(t, frag.Found)
	assert.Contains(t, frag.HTML, "important article paragraph text")
}

func TestExtractor_RemovesNavigation(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article><p>This is the main article content that should be preserved in the output.</p></article>
</body>
</html>`

	frag := readability.NewExtractor().ExtractContent(html, "https://example.com/a")

	require.True(t, frag.Found)
	assert.NotContains(t, frag.HTML, "Home Nav Link")
	assert.NotContains(t, frag.HTML, "About Nav Link")
}

func TestExtractor_InvalidBaseURLStillExtracts(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body><article><p>Plenty of readable article text lives in this paragraph right here.</p></article></body>
</html>`

	frag := readability.NewExtractor().ExtractContent(html, "::not-a-url::")

	assert.True(t, frag.Found)
}
