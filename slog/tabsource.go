// Package slog provides logging decorators for pipeline dependencies.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/tabread/tabread"
)

// Ensure LoggingTabSource implements tabread.TabSource at compile time.
var _ tabread.TabSource = (*LoggingTabSource)(nil)

// LoggingTabSource wraps a TabSource with capture logging.
type LoggingTabSource struct {
	next   tabread.TabSource
	logger *slog.Logger
}

// NewLoggingTabSource creates a new LoggingTabSource.
func NewLoggingTabSource(next tabread.TabSource, logger *slog.Logger) *LoggingTabSource {
	return &LoggingTabSource{next: next, logger: logger}
}

// Snapshot captures the active tab and logs the outcome.
func (s *LoggingTabSource) Snapshot(ctx context.Context) (*tabread.Snapshot, error) {
	start := time.Now()
	snap, err := s.next.Snapshot(ctx)
	if err != nil {
		s.logger.Error("snapshot", "err", err, "duration", time.Since(start))
		return nil, err
	}

	s.logger.Info("snapshot",
		"url", snap.URL,
		"bytes", len(snap.HTML),
		"duration", time.Since(start),
	)
	return snap, nil
}

// Snapshots captures all open tabs and logs the outcome.
func (s *LoggingTabSource) Snapshots(ctx context.Context) ([]*tabread.Snapshot, error) {
	start := time.Now()
	snaps, err := s.next.Snapshots(ctx)
	if err != nil {
		s.logger.Error("snapshots", "err", err, "duration", time.Since(start))
		return nil, err
	}

	s.logger.Info("snapshots", "tabs", len(snaps), "duration", time.Since(start))
	return snaps, nil
}

// Open navigates to the URL and logs the outcome.
func (s *LoggingTabSource) Open(ctx context.Context, url string) error {
	start := time.Now()
	if err := s.next.Open(ctx, url); err != nil {
		s.logger.Error("open", "url", url, "err", err, "duration", time.Since(start))
		return err
	}

	s.logger.Info("open", "url", url, "duration", time.Since(start))
	return nil
}

// Close delegates to the inner TabSource.
func (s *LoggingTabSource) Close() error {
	return s.next.Close()
}
