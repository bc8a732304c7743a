package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/marrow/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_ConvertsHeadings(t *testing.T) {
	t.Parallel()

	got, err := htmltomarkdown.NewConverter().Convert("<h2>Section</h2><p>Body text.</p>")

	require.NoError(t, err)
	assert.Contains(t, got, "## Section")
	assert.Contains(t, got, "Body text.")
}

func TestConverter_ConvertsLinks(t *testing.T) {
	t.Parallel()

	got, err := htmltomarkdown.NewConverter().Convert(`<p><a href="https://example.com">Example</a></p>`)

	require.NoError(t, err)
	assert.Contains(t, got, "[Example](https://example.com)")
}

func TestConverter_EmptyInput(t *testing.T) {
	t.Parallel()

	got, err := htmltomarkdown.NewConverter().Convert("   ")

	require.NoError(t, err)
	assert.Empty(t, got)
}
