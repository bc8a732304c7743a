package marrow

// Fragment is a markup string holding extracted article content. Found
// distinguishes a failed extraction from an extraction that produced
// literally empty markup; downstream stages skip absent fragments instead
// of sanitizing or converting nothing.
type Fragment struct {
	HTML  string
	Found bool
}

// SomeFragment returns a present fragment holding html.
func SomeFragment(html string) Fragment {
	return Fragment{HTML: html, Found: true}
}

// NoFragment is the absence sentinel.
var NoFragment = Fragment{}

// ContentExtractor identifies the primary article region of a page.
// Implementations absorb their own failures: any error in the underlying
// readability capability normalizes to NoFragment rather than aborting the
// pipeline.
type ContentExtractor interface {
	// ExtractContent returns the main content of the page as a markup
	// fragment, or NoFragment when no content region could be identified.
	// baseURL resolves relative references inside the content.
	ExtractContent(html string, baseURL string) Fragment
}

// Sanitizer removes script-executing elements, inline event handlers, and
// other unsafe constructs from a markup fragment while preserving safe
// structural and text-formatting markup.
type Sanitizer interface {
	Sanitize(html string) (string, error)
}

// TextConverter converts a markup fragment into plain text. Image elements
// contribute no text, anchors contribute their text without the target URL,
// and no artificial line breaks are inserted.
type TextConverter interface {
	ConvertText(html string) (string, error)
}

// Converter converts HTML to Markdown. Used for the optional markdown
// projection of the sanitized content.
type Converter interface {
	Convert(html string) (string, error)
}
