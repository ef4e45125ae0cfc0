package mock

import "github.com/tabread/tabread"

var _ tabread.Converter = (*Converter)(nil)

// Converter is a mock implementation of tabread.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
