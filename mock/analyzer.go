package mock

import (
	"context"

	"github.com/tabread/tabread"
)

var _ tabread.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of tabread.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, content string, instruction string) (string, error)
}

func (a *Analyzer) Analyze(ctx context.Context, content string, instruction string) (string, error) {
	return a.AnalyzeFn(ctx, content, instruction)
}
