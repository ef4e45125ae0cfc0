package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabread/tabread"
	"github.com/tabread/tabread/mock"
	tabslog "github.com/tabread/tabread/slog"
)

func TestLoggingTabSource_Snapshot(t *testing.T) {
	t.Parallel()

	t.Run("logs capture with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TabSource{
			SnapshotFn: func(ctx context.Context) (*tabread.Snapshot, error) {
				return &tabread.Snapshot{URL: "https://example.com/page", HTML: "<html>content</html>"}, nil
			},
		}

		source := tabslog.NewLoggingTabSource(inner, logger)
		snap, err := source.Snapshot(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/page", snap.URL)
		output := buf.String()
		assert.Contains(t, output, "snapshot")
		assert.Contains(t, output, "url=https://example.com/page")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TabSource{
			SnapshotFn: func(ctx context.Context) (*tabread.Snapshot, error) {
				return nil, errors.New("browser gone")
			},
		}

		source := tabslog.NewLoggingTabSource(inner, logger)
		_, err := source.Snapshot(context.Background())

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "snapshot")
		assert.Contains(t, output, "err=\"browser gone\"")
	})
}

func TestLoggingTabSource_Open(t *testing.T) {
	t.Parallel()

	t.Run("logs navigation with url and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var openedURL string
		inner := &mock.TabSource{
			OpenFn: func(ctx context.Context, url string) error {
				openedURL = url
				return nil
			},
		}

		source := tabslog.NewLoggingTabSource(inner, logger)
		err := source.Open(context.Background(), "https://example.com/docs")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/docs", openedURL)
		output := buf.String()
		assert.Contains(t, output, "open")
		assert.Contains(t, output, "url=https://example.com/docs")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TabSource{
			OpenFn: func(ctx context.Context, url string) error {
				return errors.New("navigation timed out")
			},
		}

		source := tabslog.NewLoggingTabSource(inner, logger)
		err := source.Open(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"navigation timed out\"")
	})
}

func TestLoggingTabSource_Close(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner source", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		closeCalled := false
		inner := &mock.TabSource{
			CloseFn: func() error {
				closeCalled = true
				return nil
			},
		}

		source := tabslog.NewLoggingTabSource(inner, logger)
		err := source.Close()

		require.NoError(t, err)
		assert.True(t, closeCalled)
	})
}
