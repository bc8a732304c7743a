// Package pipeline orchestrates the extraction stages: metadata rule
// evaluation, main-content extraction, sanitization, text projection, and
// image resolution. It coordinates the stage components and assembles the
// final result.
package pipeline

import (
	"context"
	"regexp"
	"strings"

	"github.com/fwojciec/marrow"
	"golang.org/x/sync/errgroup"
)

// Ensure Pipeline implements marrow.PageExtractor at compile time.
var _ marrow.PageExtractor = (*Pipeline)(nil)

// Pipeline runs the extraction stages over one HTML document. The metadata
// branch and the content branch are data-independent and run concurrently;
// each branch is internally sequential. A Pipeline holds no per-call state
// and is safe for concurrent use.
type Pipeline struct {
	Metadata marrow.MetadataExtractor
	Content  marrow.ContentExtractor
	Sanitize marrow.Sanitizer
	Text     marrow.TextConverter
	Favicons marrow.FaviconFinder

	// Markdown is optional; required only for the markdown output format.
	Markdown marrow.Converter
}

// crude last-resort tag stripper, used only when the text converter fails.
var tagPattern = regexp.MustCompile(`<[^>]*>`)

// ExtractPage runs the full pipeline and assembles the result.
//
// Stage failures are absorbed per stage: a failed content extraction yields
// empty text, a failed sanitization keeps the original fragment (a
// deliberate availability-over-safety trade-off), and a failed text
// conversion falls back to crude tag stripping. Only an unparseable
// document surfaces as an error.
func (p *Pipeline) ExtractPage(ctx context.Context, html string, opts marrow.ExtractOptions) (*marrow.Result, error) {
	if err := marrow.ValidateURL(opts.URL); err != nil {
		return nil, err
	}

	var (
		meta      marrow.Metadata
		readable  marrow.Fragment
		sanitized string
		plaintext string
	)

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		meta, err = p.Metadata.ExtractMetadata(html, opts.URL)
		return err
	})

	g.Go(func() error {
		readable = p.Content.ExtractContent(html, opts.URL)
		sanitized = p.sanitize(readable)
		plaintext = p.projectText(sanitized)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	selection := p.selectImage(meta, html, opts.URL)

	resultMeta := meta.Clone()
	if selection.Selected != nil {
		resultMeta.Image = *selection.Selected
	} else {
		resultMeta.Image = ""
	}

	content := plaintext
	if opts.Format == marrow.FormatMarkdown && p.Markdown != nil {
		if md, err := p.Markdown.Convert(sanitized); err == nil {
			content = md
		}
	}

	result := &marrow.Result{
		Content:  content,
		Image:    selection.Selected,
		Metadata: resultMeta,
	}

	if opts.Debug {
		result.Debug = &marrow.Debug{
			Metadata:       meta,
			ReadableHTML:   readable.HTML,
			SanitizedHTML:  sanitized,
			Plaintext:      plaintext,
			ImageSelection: selection,
		}
	}

	return result, nil
}

// sanitize applies the sanitizer to a present fragment. An absent fragment
// passes through as empty. When the sanitizer itself fails the original,
// unsanitized fragment is returned: content availability wins over strict
// safety in the failure case. Callers relying on sanitized output must
// treat this as a known trust trade-off.
func (p *Pipeline) sanitize(frag marrow.Fragment) string {
	if !frag.Found {
		return ""
	}
	clean, err := p.Sanitize.Sanitize(frag.HTML)
	if err != nil {
		return frag.HTML
	}
	return clean
}

// projectText converts markup to plain text, falling back to crude tag
// stripping when the converter fails, then normalizes line whitespace.
func (p *Pipeline) projectText(html string) string {
	if html == "" {
		return ""
	}
	text, err := p.Text.ConvertText(html)
	if err != nil {
		text = tagPattern.ReplaceAllString(html, "")
	}
	return normalizeLines(text)
}

// normalizeLines trims every line and drops lines that become empty,
// removing the blank-line runs left behind by stripped block elements.
func normalizeLines(text string) string {
	lines := strings.Split(text, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
