package marrow

// Reason codes identifying which image fallback tier fired.
const (
	// ImageReasonPrimary: the rule engine's image field was usable as-is.
	ImageReasonPrimary = "primary"

	// ImageReasonLogo: fell back to the site logo/favicon signal.
	ImageReasonLogo = "logo_fallback"

	// ImageReasonFavicon: fell back to a favicon link parsed from the raw HTML.
	ImageReasonFavicon = "favicon_from_html"

	// ImageReasonNone: no suitable image found; the image is absent.
	ImageReasonNone = "no_suitable_image_found"
)

// ImageSelection records an image resolution decision: the URL originally
// extracted by the rule engine (if any), the URL ultimately selected after
// fallbacks, and the reason code naming the tier that fired. A nil pointer
// means absent, never an empty string.
type ImageSelection struct {
	Extracted *string `json:"extracted"`
	Selected  *string `json:"selected"`
	Reason    string  `json:"reason"`
}

// FaviconFinder locates a favicon URL in raw HTML link elements.
type FaviconFinder interface {
	// FindFavicon returns the first favicon advertised by the document,
	// searching link elements in preference order and resolving relative
	// hrefs against baseURL. The second return is false when no usable
	// favicon exists.
	FindFavicon(html string, baseURL string) (string, bool)
}
