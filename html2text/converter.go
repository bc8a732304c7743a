// Package html2text projects content fragments to plain text using
// jaytaylor/html2text.
package html2text

import (
	"github.com/fwojciec/marrow"
	"github.com/jaytaylor/html2text"
)

// Ensure Converter implements marrow.TextConverter at compile time.
var _ marrow.TextConverter = (*Converter)(nil)

// Converter wraps html2text to strip markup from a fragment. Images
// contribute no text, anchors keep their text without the target URL, and
// no line wrapping is applied.
type Converter struct{}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{}
}

// ConvertText transforms a markup fragment into plain text.
func (c *Converter) ConvertText(html string) (string, error) {
	return html2text.FromString(html, html2text.Options{
		OmitLinks: true,
		TextOnly:  true,
	})
}
