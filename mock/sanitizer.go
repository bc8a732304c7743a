package mock

import "github.com/fwojciec/marrow"

var _ marrow.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of marrow.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(html string) (string, error)
}

func (m *Sanitizer) Sanitize(html string) (string, error) {
	return m.SanitizeFn(html)
}
