package goquery_test

import (
	"testing"

	"github.com/fwojciec/marrow/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarketplace_ProductImageBeatsGenericImage(t *testing.T) {
	t.Parallel()

	html := `<html><head>
<meta property="og:image" content="https://example.com/site-logo.png"/>
</head><body>
<img data-a-dynamic-image='{"https://images.example.com/product.jpg":[500,500]}' src="https://images.example.com/product.jpg"/>
</body></html>`

	ext := goquery.NewExtractor()
	meta, err := ext.ExtractMetadata(html, "https://marketplace.example.com/dp/B01")

	require.NoError(t, err)
	assert.Equal(t, "https://images.example.com/product.jpg", meta.Image)
}

func TestMarketplace_ProductImageDataSrcFallback(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<img data-a-dynamic-image="{}" data-src="/images/I/lazy.jpg"/>
</body></html>`

	ext := goquery.NewExtractor()
	meta, err := ext.ExtractMetadata(html, "https://marketplace.example.com/dp/B01")

	require.NoError(t, err)
	assert.Equal(t, "https://marketplace.example.com/images/I/lazy.jpg", meta.Image)
}

func TestMarketplace_PriceAndProductTitle(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<span id="productTitle"> Widget Deluxe </span>
<span class="a-price"><span class="a-offscreen">$19.99</span></span>
</body></html>`

	ext := goquery.NewExtractor()
	meta, err := ext.ExtractMetadata(html, "https://marketplace.example.com/dp/B01")

	require.NoError(t, err)
	assert.Equal(t, "$19.99", meta.Price)
	assert.Equal(t, "Widget Deluxe", meta.ProductTitle)
}

func TestMarketplace_GenericImageStillWorksWithoutProductMarkup(t *testing.T) {
	t.Parallel()

	html := `<html><head><meta property="og:image" content="https://cdn.example.com/hero.jpg"/></head><body></body></html>`

	ext := goquery.NewExtractor()
	meta, err := ext.ExtractMetadata(html, "https://example.com/")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/hero.jpg", meta.Image)
}
