// Package bluemonday sanitizes content fragments using
// microcosm-cc/bluemonday's UGC policy.
package bluemonday

import (
	"github.com/fwojciec/marrow"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure Sanitizer implements marrow.Sanitizer at compile time.
var _ marrow.Sanitizer = (*Sanitizer)(nil)

// Sanitizer strips script-executing elements, inline event handlers, and
// other unsafe constructs while keeping safe structural and formatting
// markup.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer with the UGC policy.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.UGCPolicy()}
}

// Sanitize returns the fragment with unsafe constructs removed.
func (s *Sanitizer) Sanitize(html string) (string, error) {
	return s.policy.Sanitize(html), nil
}
