package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/marrow/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_EmptyInputIsAbsent(t *testing.T) {
	t.Parallel()

	frag := trafilatura.NewExtractor().ExtractContent("", "https://example.com/")

	assert.False(t, frag.Found)
}

func TestExtractor_KeepsMainArticleContent(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/home">Home</a></nav>
<article>
<p>This is the first paragraph of the main article body with enough text to score.</p>
<p>This is the second paragraph of the main article body, also full of words.</p>
</article>
<footer><p>Footer</p></footer>
</body>
</html>`

	frag := trafilatura.NewExtractor().ExtractContent(html, "https://example.com/a")

	require.True(t, frag.Found)
	assert.Contains(t, frag.HTML, "first paragraph of the main article")
}

func TestExtractor_GarbageInputIsAbsent(t *testing.T) {
	t.Parallel()

	frag := trafilatura.NewExtractor().ExtractContent("\x00\x01\x02", "https://example.com/")

	assert.False(t, frag.Found)
}
