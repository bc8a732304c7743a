package goquery_test

import (
	"testing"

	"github.com/fwojciec/marrow"
	"github.com/fwojciec/marrow/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_EmptyRecordIsValid(t *testing.T) {
	t.Parallel()

	ext := goquery.NewExtractor()
	meta, err := ext.ExtractMetadata("<html><body><p>nothing here</p></body></html>", "")

	require.NoError(t, err)
	assert.Empty(t, meta.Title)
	assert.Empty(t, meta.Image)
	assert.Nil(t, meta.Upvotes)
}

func TestExtractor_FirstMatchingRuleWins(t *testing.T) {
	t.Parallel()

	html := `<html><head>
<meta property="og:title" content="OG Title"/>
<meta name="twitter:title" content="Twitter Title"/>
<title>Document Title</title>
</head><body></body></html>`

	ext := goquery.NewExtractor()
	meta, err := ext.ExtractMetadata(html, "https://example.com/a")

	require.NoError(t, err)
	assert.Equal(t, "OG Title", meta.Title)
}

func TestExtractor_CoreFields(t *testing.T) {
	t.Parallel()

	html := `<html><head>
<meta property="og:title" content="Hello"/>
<meta property="og:description" content="A description"/>
<meta property="og:site_name" content="Example News"/>
<meta name="author" content="Jane Roe"/>
<meta property="article:published_time" content="2024-03-01T10:00:00Z"/>
<meta property="article:modified_time" content="2024-03-02T10:00:00Z"/>
<meta property="og:image" content="https://cdn.example.com/hero.jpg"/>
<link rel="canonical" href="https://example.com/article"/>
</head><body></body></html>`

	ext := goquery.NewExtractor()
	meta, err := ext.ExtractMetadata(html, "https://example.com/article?utm=1")

	require.NoError(t, err)
	assert.Equal(t, "Hello", meta.Title)
	assert.Equal(t, "A description", meta.Description)
	assert.Equal(t, "Example News", meta.Publisher)
	assert.Equal(t, "Jane Roe", meta.Author)
	assert.Equal(t, "2024-03-01T10:00:00Z", meta.DatePublished)
	assert.Equal(t, "2024-03-02T10:00:00Z", meta.DateModified)
	assert.Equal(t, "https://cdn.example.com/hero.jpg", meta.Image)
	assert.Equal(t, "https://example.com/article", meta.URL)
}

func TestExtractor_ResolvesRelativeImage(t *testing.T) {
	t.Parallel()

	html := `<html><head><meta property="og:image" content="/img/hero.jpg"/></head><body></body></html>`

	ext := goquery.NewExtractor()
	meta, err := ext.ExtractMetadata(html, "https://example.com/posts/1")

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/img/hero.jpg", meta.Image)
}

func TestExtractor_RelativeImageWithoutBaseIsSkipped(t *testing.T) {
	t.Parallel()

	html := `<html><head><meta property="og:image" content="/img/hero.jpg"/></head><body></body></html>`

	ext := goquery.NewExtractor()
	meta, err := ext.ExtractMetadata(html, "")

	require.NoError(t, err)
	assert.Empty(t, meta.Image)
}

func TestExtractor_ImagePrecedesLogo(t *testing.T) {
	t.Parallel()

	html := `<html><head>
<meta property="og:image" content="https://cdn.example.com/hero.jpg"/>
<link rel="icon" href="https://example.com/fav.ico"/>
</head><body></body></html>`

	ext := goquery.NewExtractor()
	meta, err := ext.ExtractMetadata(html, "https://example.com/")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/hero.jpg", meta.Image)
	assert.Equal(t, "https://example.com/fav.ico", meta.Logo)
}

func TestExtractor_CanonicalURLFallsBackToBaseURL(t *testing.T) {
	t.Parallel()

	ext := goquery.NewExtractor()
	meta, err := ext.ExtractMetadata("<html><body></body></html>", "https://example.com/page")

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/page", meta.URL)
}

func TestExtractor_ExtraFieldsRetained(t *testing.T) {
	t.Parallel()

	html := `<html><head>
<meta name="keywords" content="go,extraction"/>
<meta property="article:section" content="Tech"/>
</head><body></body></html>`

	ext := goquery.NewExtractor()
	meta, err := ext.ExtractMetadata(html, "https://example.com/")

	require.NoError(t, err)
	assert.Equal(t, "go,extraction", meta.Extra["keywords"])
	assert.Equal(t, "Tech", meta.Extra["section"])
}

func TestExtractor_MalformedHTMLTolerated(t *testing.T) {
	t.Parallel()

	ext := goquery.NewExtractor()
	meta, err := ext.ExtractMetadata("<html><head><meta property=\"og:title\" content=\"Ok\"><body><div><p>unclosed", "https://example.com/")

	require.NoError(t, err)
	assert.Equal(t, "Ok", meta.Title)
}

func TestExtractor_CustomRuleSets(t *testing.T) {
	t.Parallel()

	ext := goquery.NewExtractorWithRules([]goquery.RuleSet{{
		Name: "fixed",
		Rules: []goquery.Rule{
			{Field: goquery.FieldTitle, Extract: func(*goquery.Page) string { return "fixed title" }},
		},
	}})
	meta, err := ext.ExtractMetadata("<html></html>", "")

	require.NoError(t, err)
	assert.Equal(t, "fixed title", meta.Title)
	var _ marrow.MetadataExtractor = ext
}
