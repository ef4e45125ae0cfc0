package tabread

import "context"

// Snapshot is an already-rendered capture of a browser tab. The pipeline
// operates on this copy and never mutates the live page.
type Snapshot struct {
	URL      string
	Title    string
	HTML     string
	BodyText string
}

// TabSource captures snapshots from a running browser.
// Implementations hide browser attachment, readiness waits, and the
// DevTools protocol.
type TabSource interface {
	// Snapshot captures the active tab.
	// The context controls timeout and cancellation.
	Snapshot(ctx context.Context) (*Snapshot, error)

	// Snapshots captures every open page tab.
	Snapshots(ctx context.Context) ([]*Snapshot, error)

	// Open navigates a new tab to the URL, waits for it to load, and
	// makes it the tab Snapshot captures.
	Open(ctx context.Context, url string) error

	// Close releases browser resources.
	// Must be called when the TabSource is no longer needed.
	Close() error
}

// Analyzer produces an LLM analysis of extracted tab content.
type Analyzer interface {
	// Analyze runs the instruction against the extracted content and
	// returns the model's response.
	Analyze(ctx context.Context, content string, instruction string) (string, error)
}
