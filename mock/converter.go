package mock

import "github.com/fwojciec/marrow"

var _ marrow.Converter = (*Converter)(nil)

// Converter is a mock implementation of marrow.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (m *Converter) Convert(html string) (string, error) {
	return m.ConvertFn(html)
}
