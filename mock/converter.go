package mock

import "github.com/fwojciec/docname"

var _ docname.Converter = (*Converter)(nil)

// Converter is a mock implementation of docname.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
