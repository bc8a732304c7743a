package mock

import "github.com/fwojciec/marrow"

var _ marrow.TextConverter = (*TextConverter)(nil)

// TextConverter is a mock implementation of marrow.TextConverter.
type TextConverter struct {
	ConvertTextFn func(html string) (string, error)
}

func (m *TextConverter) ConvertText(html string) (string, error) {
	return m.ConvertTextFn(html)
}
