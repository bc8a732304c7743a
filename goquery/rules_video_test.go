package goquery_test

import (
	"testing"

	"github.com/fwojciec/marrow/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideo_IdentifiersFromItemprops(t *testing.T) {
	t.Parallel()

	html := `<html><head>
<meta itemprop="videoId" content="dQw4w9WgXcQ"/>
<meta itemprop="channelId" content="UC123"/>
<span itemprop="author" itemscope itemtype="http://schema.org/Person">
  <link itemprop="name" content="Example Channel"/>
</span>
</head><body></body></html>`

	ext := goquery.NewExtractor()
	meta, err := ext.ExtractMetadata(html, "https://video.example.com/watch?v=dQw4w9WgXcQ")

	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", meta.VideoID)
	assert.Equal(t, "UC123", meta.ChannelID)
	assert.Equal(t, "Example Channel", meta.ChannelName)
}

func TestVideo_IDFromWatchURL(t *testing.T) {
	t.Parallel()

	html := `<html><head>
<meta property="og:url" content="https://video.example.com/watch?v=abc-123_XY"/>
</head><body></body></html>`

	ext := goquery.NewExtractor()
	meta, err := ext.ExtractMetadata(html, "https://video.example.com/watch?v=abc-123_XY")

	require.NoError(t, err)
	assert.Equal(t, "abc-123_XY", meta.VideoID)
}

func TestVideo_ChannelNameBecomesAuthor(t *testing.T) {
	t.Parallel()

	html := `<html><head>
<span itemprop="author"><link itemprop="name" content="Example Channel"/></span>
<meta name="author" content="Generic Author"/>
</head><body></body></html>`

	ext := goquery.NewExtractor()
	meta, err := ext.ExtractMetadata(html, "https://video.example.com/watch?v=x")

	require.NoError(t, err)
	// Platform-specific author beats the generic author meta tag.
	assert.Equal(t, "Example Channel", meta.Author)
}
