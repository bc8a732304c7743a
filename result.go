package marrow

import "context"

// Format selects the projection applied to the sanitized content.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
)

// ExtractOptions configures a single extraction run.
type ExtractOptions struct {
	// URL is the page's base URL, required for resolving relative
	// references and metadata canonicalization. Must use the http or https
	// scheme.
	URL string

	// Debug captures a per-stage diagnostic snapshot on the result.
	Debug bool

	// Format selects plain text (default) or markdown content output.
	Format Format
}

// Result is the final output of the extraction pipeline. It is immutable
// once returned.
type Result struct {
	// Content is the projected content: plain text with no markup, or
	// markdown when requested.
	Content string `json:"content"`

	// Image is the best representative image after fallbacks, or nil when
	// no suitable image was found.
	Image *string `json:"image"`

	// Metadata is the full metadata record. Its Image field reflects the
	// image resolution decision.
	Metadata Metadata `json:"metadata"`

	// Debug is the optional per-stage snapshot. Nil unless requested.
	Debug *Debug `json:"debug,omitempty"`
}

// Debug is a read-only snapshot of intermediate pipeline outputs, captured
// after each stage when the debug option is set.
type Debug struct {
	// Metadata as produced by the rule engine, before image resolution.
	Metadata Metadata `json:"metadata"`

	// ReadableHTML is the pre-sanitization content fragment, or "" when
	// main-content extraction failed.
	ReadableHTML string `json:"readableHtml"`

	// SanitizedHTML is the post-sanitization fragment.
	SanitizedHTML string `json:"sanitizedHtml"`

	// Plaintext is the final projected text.
	Plaintext string `json:"plaintext"`

	// ImageSelection records which fallback tier chose the image.
	ImageSelection ImageSelection `json:"imageSelection"`
}

// PageExtractor runs the full extraction pipeline on one document. This is
// the surface consumed by the CLI file mode and the HTTP service mode.
type PageExtractor interface {
	ExtractPage(ctx context.Context, html string, opts ExtractOptions) (*Result, error)
}
