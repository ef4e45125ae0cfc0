// Package rod captures browser tab snapshots using Chrome automation.
// It can attach to an already-running browser over the DevTools protocol
// or launch its own headless instance.
package rod

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/tabread/tabread"
)

// DefaultSnapshotTimeout bounds a single tab capture.
const DefaultSnapshotTimeout = 10 * time.Second

// Ensure TabSource implements tabread.TabSource at compile time.
var _ tabread.TabSource = (*TabSource)(nil)

// TabSource captures rendered snapshots from Chrome tabs.
// TabSource is safe for concurrent use by multiple goroutines.
type TabSource struct {
	browser    *rod.Browser
	controlURL string
	timeout    time.Duration
	launched   bool

	mu     sync.Mutex
	opened *rod.Page // most recently opened tab, preferred by Snapshot
}

// Option configures a TabSource.
type Option func(*TabSource)

// WithControlURL attaches to a running browser instead of launching one.
// Accepts a DevTools websocket URL, host:port, or a bare debugging port
// (e.g. "9222" for Chrome started with --remote-debugging-port=9222).
func WithControlURL(u string) Option {
	return func(ts *TabSource) {
		ts.controlURL = u
	}
}

// WithSnapshotTimeout sets the per-capture timeout.
// Defaults to DefaultSnapshotTimeout (10s) if not specified.
func WithSnapshotTimeout(d time.Duration) Option {
	return func(ts *TabSource) {
		ts.timeout = d
	}
}

// NewTabSource creates a new TabSource. Without WithControlURL it
// launches a headless Chrome via rod's launcher (finds or downloads
// Chrome). Close must be called when the TabSource is no longer needed.
func NewTabSource(opts ...Option) (*TabSource, error) {
	ts := &TabSource{timeout: DefaultSnapshotTimeout}
	for _, opt := range opts {
		opt(ts)
	}

	if ts.controlURL != "" {
		u, err := launcher.ResolveURL(ts.controlURL)
		if err != nil {
			return nil, tabread.Errorf(tabread.EUNAVAILABLE, "resolving browser control URL %q: %s", ts.controlURL, err)
		}
		browser := rod.New().ControlURL(u)
		if err := browser.Connect(); err != nil {
			return nil, tabread.Errorf(tabread.EUNAVAILABLE, "connecting to browser at %q: %s", ts.controlURL, err)
		}
		ts.browser = browser
		return ts, nil
	}

	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	ts.browser = browser
	ts.launched = true
	return ts, nil
}

// Open navigates a new tab to the URL, waits for it to load, and makes
// it the tab Snapshot captures.
func (ts *TabSource) Open(ctx context.Context, url string) error {
	page, err := ts.browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return err
	}
	if err := page.Context(ctx).WaitLoad(); err != nil {
		return err
	}

	ts.mu.Lock()
	ts.opened = page
	ts.mu.Unlock()
	return nil
}

// Snapshot captures the most recently opened tab, or the frontmost tab
// when Open has not been called.
func (ts *TabSource) Snapshot(ctx context.Context) (*tabread.Snapshot, error) {
	ctx, cancel := ts.withTimeout(ctx)
	defer cancel()

	ts.mu.Lock()
	opened := ts.opened
	ts.mu.Unlock()
	if opened != nil {
		return ts.capture(opened.Context(ctx))
	}

	pages, err := ts.browser.Pages()
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, tabread.Errorf(tabread.EUNAVAILABLE, "no open tabs")
	}

	return ts.capture(pages.First().Context(ctx))
}

// Snapshots captures every open page tab. Tabs that fail to capture
// (e.g. crashed renderers, devtools pages) are skipped.
func (ts *TabSource) Snapshots(ctx context.Context) ([]*tabread.Snapshot, error) {
	pages, err := ts.browser.Pages()
	if err != nil {
		return nil, err
	}

	snaps := make([]*tabread.Snapshot, 0, len(pages))
	for _, page := range pages {
		captureCtx, cancel := ts.withTimeout(ctx)
		snap, err := ts.capture(page.Context(captureCtx))
		cancel()
		if err != nil {
			continue
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}

// capture waits for the document to be ready and reads URL, title, HTML,
// and the rendered body text in one pass.
func (ts *TabSource) capture(page *rod.Page) (*tabread.Snapshot, error) {
	if err := page.WaitLoad(); err != nil {
		return nil, err
	}

	info, err := page.Info()
	if err != nil {
		return nil, err
	}

	html, err := page.HTML()
	if err != nil {
		return nil, err
	}

	obj, err := page.Eval(`() => document.body ? document.body.innerText : ""`)
	if err != nil {
		return nil, err
	}

	return &tabread.Snapshot{
		URL:      info.URL,
		Title:    info.Title,
		HTML:     html,
		BodyText: obj.Value.Str(),
	}, nil
}

// Close releases browser resources. Browsers this TabSource attached to
// (rather than launched) are left running.
func (ts *TabSource) Close() error {
	if !ts.launched {
		return nil
	}
	return ts.browser.Close()
}

func (ts *TabSource) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ts.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, ts.timeout)
}
