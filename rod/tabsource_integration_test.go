//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabread/tabread"
	"github.com/tabread/tabread/rod"
)

// Ensure TabSource implements tabread.TabSource.
var _ tabread.TabSource = (*rod.TabSource)(nil)

func TestTabSource_Snapshot_CapturesRenderedContent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head><title>JS Page</title></head><body>
<div id="target">static</div>
<script>document.getElementById("target").textContent = "rendered by script";</script>
</body></html>`))
	}))
	defer srv.Close()

	source, err := rod.NewTabSource(rod.WithSnapshotTimeout(30 * time.Second))
	require.NoError(t, err)
	defer source.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	require.NoError(t, source.Open(ctx, srv.URL))

	snap, err := source.Snapshot(ctx)
	require.NoError(t, err)

	assert.Equal(t, "JS Page", snap.Title)
	assert.Contains(t, snap.BodyText, "rendered by script")
	assert.Contains(t, snap.HTML, "<title>JS Page</title>")
}

func TestTabSource_Snapshot_NoTabs(t *testing.T) {
	t.Parallel()

	source, err := rod.NewTabSource()
	require.NoError(t, err)
	defer source.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err = source.Snapshot(ctx)
	if err != nil {
		assert.Equal(t, tabread.EUNAVAILABLE, tabread.ErrorCode(err))
	}
}
