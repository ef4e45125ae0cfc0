package mock

import "github.com/tabread/tabread"

var _ tabread.Reducer = (*Reducer)(nil)

// Reducer is a mock implementation of tabread.Reducer.
type Reducer struct {
	ReduceFn func(html string) (*tabread.Article, error)
}

func (r *Reducer) Reduce(html string) (*tabread.Article, error) {
	return r.ReduceFn(html)
}
