package mock

import (
	"context"

	"github.com/tabread/tabread"
)

var _ tabread.TabSource = (*TabSource)(nil)

// TabSource is a mock implementation of tabread.TabSource.
type TabSource struct {
	SnapshotFn  func(ctx context.Context) (*tabread.Snapshot, error)
	SnapshotsFn func(ctx context.Context) ([]*tabread.Snapshot, error)
	OpenFn      func(ctx context.Context, url string) error
	CloseFn     func() error
}

func (s *TabSource) Snapshot(ctx context.Context) (*tabread.Snapshot, error) {
	return s.SnapshotFn(ctx)
}

func (s *TabSource) Snapshots(ctx context.Context) ([]*tabread.Snapshot, error) {
	return s.SnapshotsFn(ctx)
}

func (s *TabSource) Open(ctx context.Context, url string) error {
	return s.OpenFn(ctx, url)
}

func (s *TabSource) Close() error {
	return s.CloseFn()
}
