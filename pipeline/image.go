package pipeline

import (
	"strings"

	"github.com/fwojciec/marrow"
)

// selectImage resolves the best representative image for the page. It is a
// pure selection over the rule engine's record: the record itself is never
// mutated, the caller merges the returned selection.
//
// Cascade, each tier tried only when the previous produced nothing usable:
//  1. the record's image field,
//  2. the record's logo field,
//  3. a favicon link parsed from the raw HTML,
//  4. absent.
//
// Inline-encoded (data:) values fail the usable test at every tier: they
// are typically large and unsuitable as an external reference.
func (p *Pipeline) selectImage(meta marrow.Metadata, rawHTML string, baseURL string) marrow.ImageSelection {
	var selection marrow.ImageSelection
	if meta.Image != "" {
		extracted := meta.Image
		selection.Extracted = &extracted
	}

	if usableImage(meta.Image) {
		selected := meta.Image
		selection.Selected = &selected
		selection.Reason = marrow.ImageReasonPrimary
		return selection
	}

	if usableImage(meta.Logo) {
		selected := meta.Logo
		selection.Selected = &selected
		selection.Reason = marrow.ImageReasonLogo
		return selection
	}

	// Prefer the canonical URL resolved by the rule engine as the favicon
	// resolution base; fall back to the caller-supplied base URL.
	base := meta.URL
	if base == "" {
		base = baseURL
	}
	if favicon, ok := p.Favicons.FindFavicon(rawHTML, base); ok {
		selection.Selected = &favicon
		selection.Reason = marrow.ImageReasonFavicon
		return selection
	}

	selection.Reason = marrow.ImageReasonNone
	return selection
}

// usableImage reports whether v is a non-empty, non-inline-encoded image
// reference.
func usableImage(v string) bool {
	return v != "" && !strings.HasPrefix(strings.ToLower(v), "data:")
}
