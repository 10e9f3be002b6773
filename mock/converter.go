package mock

import "github.com/skaranam/namartha"

var _ namartha.Converter = (*Converter)(nil)

// Converter is a mock implementation of namartha.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
