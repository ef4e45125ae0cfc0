package tabread

// Strategy selects which pipeline stages run for a request.
type Strategy string

// Supported extraction strategies.
const (
	// StrategySimple reads the tab's body text directly, with no
	// sanitization or reduction. Fast, low fidelity.
	StrategySimple Strategy = "simple"

	// StrategyThreePhase runs the full Sanitize -> Reduce -> Keyword
	// Range pipeline over the captured document.
	StrategyThreePhase Strategy = "three-phase"
)

// Result statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ExtractionRequest describes a single extraction over a tab snapshot.
// Keyword matching is case-insensitive, first-occurrence substring search.
type ExtractionRequest struct {
	Strategy     Strategy `json:"strategy"`
	StartKeyword string   `json:"startKeyword,omitempty"`
	EndKeyword   string   `json:"endKeyword,omitempty"`
}

// Validate returns an error if the request contains invalid fields.
func (r *ExtractionRequest) Validate() error {
	switch r.Strategy {
	case StrategySimple, StrategyThreePhase:
		return nil
	case "":
		return Errorf(EINVALID, "extraction strategy required")
	default:
		return Errorf(EINVALID, "unknown extraction strategy %q", r.Strategy)
	}
}

// ExtractionResult is the structured outcome of one extraction request.
// Every request yields a result; pipeline faults surface here as
// Status == StatusError with a descriptive Error message, never as a panic.
type ExtractionResult struct {
	Status           string `json:"status"`
	Title            string `json:"title"`
	URL              string `json:"url"`
	Content          string `json:"content"`
	ContentHash      string `json:"content_hash,omitempty"`
	ExtractionTimeMS int64  `json:"extraction_time_ms"`
	Error            string `json:"error,omitempty"`
}

// Capabilities reports which extraction dependencies are wired, so a
// caller can verify them before issuing a request.
type Capabilities struct {
	ReadabilityAvailable bool `json:"readabilityAvailable"`
	SanitizerAvailable   bool `json:"sanitizerAvailable"`
}

// Article holds the primary content identified by a Reducer.
type Article struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the primary content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Sanitizer strips active and unsafe content from an HTML document while
// preserving element structure, text nodes, and safe attributes.
type Sanitizer interface {
	// Sanitize returns the document with scripts, inline event handlers,
	// and dangerous URL attributes removed. Sanitizing already-sanitized
	// HTML is a no-op.
	Sanitize(html string) (string, error)
}

// Reducer identifies the primary article content of a document and
// discards boilerplate.
type Reducer interface {
	// Reduce returns the primary content of the document.
	// Returns ENOPRIMARY if no primary content can be identified;
	// callers are expected to degrade gracefully rather than fail.
	Reduce(html string) (*Article, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from a Reducer).
	Convert(html string) (string, error)
}
