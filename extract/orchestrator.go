// Package extract provides extraction pipeline orchestration.
// It dispatches a request to the chosen strategy, runs the pipeline
// stages in fixed order, enforces the time budget, and assembles the
// structured result.
package extract

import (
	"context"
	"strings"
	"time"

	"github.com/tabread/tabread"
)

// Orchestrator runs extraction requests over tab snapshots.
// All fields are optional for the simple strategy; the three-phase
// strategy requires Sanitizer, Reducer, and Converter.
//
// The Orchestrator holds no per-request state and is safe for
// concurrent use.
type Orchestrator struct {
	Sanitizer tabread.Sanitizer
	Reducer   tabread.Reducer
	Converter tabread.Converter

	// Budget bounds wall-clock time per request. Zero means unbounded.
	// When the budget is exceeded mid-pipeline, remaining stages are
	// abandoned and an error result carrying the snapshot's title and
	// URL metadata is returned.
	Budget time.Duration

	// EndPolicy controls end-keyword inclusion in ranged slices.
	// The zero value is tabread.EndInclusive.
	EndPolicy tabread.EndPolicy

	// Concurrency limits parallel work in ExtractAll. Defaults to 3.
	Concurrency int
}

// Capabilities reports which extraction dependencies are wired.
func (o *Orchestrator) Capabilities() tabread.Capabilities {
	return tabread.Capabilities{
		ReadabilityAvailable: o.Reducer != nil,
		SanitizerAvailable:   o.Sanitizer != nil,
	}
}

// Extract runs one request against a snapshot. It always returns a
// result: stage failures, unmatched keywords, and budget exhaustion all
// surface as StatusError results, never as panics or unbounded hangs.
func (o *Orchestrator) Extract(ctx context.Context, snap *tabread.Snapshot, req tabread.ExtractionRequest) *tabread.ExtractionResult {
	start := time.Now()

	if snap == nil {
		return o.errorResult(nil, start, tabread.Errorf(tabread.EINVALID, "nil tab snapshot"))
	}
	if err := req.Validate(); err != nil {
		return o.errorResult(snap, start, err)
	}

	var title, content string
	var err error

	switch req.Strategy {
	case tabread.StrategySimple:
		title = snap.Title
		content = snap.BodyText
	case tabread.StrategyThreePhase:
		title, content, err = o.threePhase(ctx, snap, start)
		if err != nil {
			return o.errorResult(snap, start, err)
		}
	}

	if req.StartKeyword != "" || req.EndKeyword != "" {
		content, err = tabread.SliceRange(content, req.StartKeyword, req.EndKeyword, o.EndPolicy)
		if err != nil {
			return o.errorResult(snap, start, err)
		}
	}

	res := &tabread.ExtractionResult{
		Status:           tabread.StatusSuccess,
		Title:            title,
		URL:              snap.URL,
		Content:          content,
		ExtractionTimeMS: elapsedMS(start),
	}
	if content != "" {
		res.ContentHash = contentHash(content)
	}
	return res
}

// threePhase runs Sanitize -> Reduce -> Convert in fixed order. Keyword
// ranging must operate on already-boilerplate-stripped text, so it runs
// after this pipeline, in Extract.
func (o *Orchestrator) threePhase(ctx context.Context, snap *tabread.Snapshot, start time.Time) (title, content string, err error) {
	if o.Sanitizer == nil || o.Reducer == nil || o.Converter == nil {
		return "", "", tabread.Errorf(tabread.EUNAVAILABLE, "three-phase extraction dependencies not available")
	}

	if err := o.checkBudget(ctx, start); err != nil {
		return "", "", err
	}

	sanitized, err := o.Sanitizer.Sanitize(snap.HTML)
	if err != nil {
		return "", "", err
	}

	if err := o.checkBudget(ctx, start); err != nil {
		return "", "", err
	}

	title = snap.Title
	article, err := o.Reducer.Reduce(sanitized)
	switch {
	case err == nil:
		if article.Title != "" {
			title = article.Title
		}
		content, err = o.convert(article.ContentHTML)
	case tabread.ErrorCode(err) == tabread.ENOPRIMARY:
		// Degraded success: thin or empty pages return the full
		// sanitized body text rather than a hard failure.
		content, err = o.convert(sanitized)
	default:
		return "", "", err
	}
	if err != nil {
		return "", "", err
	}

	if err := o.checkBudget(ctx, start); err != nil {
		return "", "", err
	}
	return title, content, nil
}

// convert renders content HTML to text, tolerating empty input.
func (o *Orchestrator) convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}
	return o.Converter.Convert(html)
}

// checkBudget aborts the pipeline once the time budget or the caller's
// context is exhausted.
func (o *Orchestrator) checkBudget(ctx context.Context, start time.Time) error {
	if err := ctx.Err(); err != nil {
		return tabread.Errorf(tabread.ETIMEOUT, "extraction aborted: %s", err)
	}
	if o.Budget > 0 && time.Since(start) > o.Budget {
		return tabread.Errorf(tabread.ETIMEOUT, "time budget of %s exceeded", o.Budget)
	}
	return nil
}

// errorResult assembles a StatusError result. Partial title and URL
// metadata from the snapshot is preserved; content is always empty.
func (o *Orchestrator) errorResult(snap *tabread.Snapshot, start time.Time, err error) *tabread.ExtractionResult {
	res := &tabread.ExtractionResult{
		Status:           tabread.StatusError,
		Error:            tabread.ErrorMessage(err),
		ExtractionTimeMS: elapsedMS(start),
	}
	if snap != nil {
		res.Title = snap.Title
		res.URL = snap.URL
	}
	return res
}

func elapsedMS(start time.Time) int64 {
	ms := time.Since(start).Milliseconds()
	if ms < 0 {
		return 0
	}
	return ms
}
