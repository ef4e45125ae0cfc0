package slog

import (
	"log/slog"
	"time"

	"github.com/tabread/tabread"
)

// Ensure LoggingReducer implements tabread.Reducer at compile time.
var _ tabread.Reducer = (*LoggingReducer)(nil)

// LoggingReducer wraps a Reducer with debug logging so degraded
// fallbacks on real pages can be diagnosed.
type LoggingReducer struct {
	next   tabread.Reducer
	logger *slog.Logger
}

// NewLoggingReducer creates a new LoggingReducer.
func NewLoggingReducer(next tabread.Reducer, logger *slog.Logger) *LoggingReducer {
	return &LoggingReducer{next: next, logger: logger}
}

// Reduce delegates to the inner Reducer and logs the outcome.
func (r *LoggingReducer) Reduce(html string) (*tabread.Article, error) {
	start := time.Now()
	article, err := r.next.Reduce(html)
	if err != nil {
		r.logger.Debug("reduce",
			"in_bytes", len(html),
			"code", tabread.ErrorCode(err),
			"err", err,
			"duration", time.Since(start),
		)
		return nil, err
	}

	r.logger.Debug("reduce",
		"in_bytes", len(html),
		"out_bytes", len(article.ContentHTML),
		"title", article.Title,
		"duration", time.Since(start),
	)
	return article, nil
}
