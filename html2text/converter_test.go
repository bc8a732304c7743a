package html2text_test

import (
	"testing"

	"github.com/fwojciec/marrow/html2text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_StripsMarkup(t *testing.T) {
	t.Parallel()

	got, err := html2text.NewConverter().ConvertText("<p>Hello <em>world</em>.</p>")

	require.NoError(t, err)
	assert.NotContains(t, got, "<")
	assert.NotContains(t, got, ">")
	assert.Contains(t, got, "Hello world.")
}

func TestConverter_AnchorTextWithoutURL(t *testing.T) {
	t.Parallel()

	got, err := html2text.NewConverter().ConvertText(`<p>See <a href="https://example.com/ref">the reference</a> for details.</p>`)

	require.NoError(t, err)
	assert.Contains(t, got, "the reference")
	assert.NotContains(t, got, "https://example.com/ref")
}

func TestConverter_ImagesContributeNoText(t *testing.T) {
	t.Parallel()

	got, err := html2text.NewConverter().ConvertText(`<p>Before</p><img src="/a.jpg" alt="A descriptive alt text"/><p>After</p>`)

	require.NoError(t, err)
	assert.Contains(t, got, "Before")
	assert.Contains(t, got, "After")
	assert.NotContains(t, got, "descriptive alt text")
}

func TestConverter_EmptyInput(t *testing.T) {
	t.Parallel()

	got, err := html2text.NewConverter().ConvertText("")

	require.NoError(t, err)
	assert.Empty(t, got)
}
