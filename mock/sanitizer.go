package mock

import "github.com/tabread/tabread"

var _ tabread.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of tabread.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(html string) (string, error)
}

func (s *Sanitizer) Sanitize(html string) (string, error) {
	return s.SanitizeFn(html)
}
