// Package http provides a thin HTTP adapter over the extraction pipeline.
// It decodes the in-process message shape, awaits the synchronous pipeline
// result, and forwards it as JSON. Authentication and persistence are
// deliberately not handled here.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/tabread/tabread"
	"golang.org/x/time/rate"
)

// Actions the adapter accepts.
const (
	// ActionExtractContent extracts the current capture target.
	ActionExtractContent = "extractContent"
	// ActionNavigateAndExtract opens a URL in a new tab, then extracts it.
	ActionNavigateAndExtract = "navigate_and_extract"
)

// Message is the request shape consumed from the transport boundary.
type Message struct {
	Action       string           `json:"action"`
	URL          string           `json:"url,omitempty"`
	Strategy     tabread.Strategy `json:"strategy"`
	StartKeyword string           `json:"startKeyword,omitempty"`
	EndKeyword   string           `json:"endKeyword,omitempty"`
}

// Extractor runs extraction requests. Implemented by extract.Orchestrator.
type Extractor interface {
	Extract(ctx context.Context, snap *tabread.Snapshot, req tabread.ExtractionRequest) *tabread.ExtractionResult
	Capabilities() tabread.Capabilities
}

// Server adapts HTTP requests to pipeline invocations.
type Server struct {
	tabs      tabread.TabSource
	extractor Extractor
	logger    *slog.Logger
	limiter   *rate.Limiter
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithRateLimit bounds accepted extraction requests per second.
// Requests over the limit are rejected with 429 rather than queued, so a
// misbehaving client cannot stack extractions against the same browser.
func WithRateLimit(rps float64, burst int) Option {
	return func(s *Server) {
		s.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewServer creates a new Server.
func NewServer(tabs tabread.TabSource, extractor Extractor, opts ...Option) *Server {
	s := &Server{
		tabs:      tabs,
		extractor: extractor,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the adapter's HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /extract", s.handleExtract)
	mux.HandleFunc("GET /capabilities", s.handleCapabilities)
	mux.HandleFunc("GET /health", s.handleHealth)
	return mux
}

// handleExtract runs one extraction round-trip. Pipeline outcomes, success
// or error, are forwarded with HTTP 200; non-200 statuses are reserved for
// transport-level problems (malformed body, unknown action, rate limit).
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	reqID := uuid.NewString()

	if s.limiter != nil && !s.limiter.Allow() {
		s.logger.Warn("extract rejected", "request_id", reqID, "reason", "rate_limit")
		writeJSON(w, http.StatusTooManyRequests, &tabread.ExtractionResult{
			Status: tabread.StatusError,
			Error:  "rate limit exceeded",
		})
		return
	}

	var msg Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		writeJSON(w, http.StatusBadRequest, &tabread.ExtractionResult{
			Status: tabread.StatusError,
			Error:  "invalid request body",
		})
		return
	}
	switch msg.Action {
	case ActionExtractContent:
	case ActionNavigateAndExtract:
		if msg.URL == "" {
			writeJSON(w, http.StatusBadRequest, &tabread.ExtractionResult{
				Status: tabread.StatusError,
				Error:  "action " + strconv.Quote(msg.Action) + " requires a url",
			})
			return
		}
	default:
		writeJSON(w, http.StatusBadRequest, &tabread.ExtractionResult{
			Status: tabread.StatusError,
			Error:  "unknown action " + strconv.Quote(msg.Action),
		})
		return
	}

	req := tabread.ExtractionRequest{
		Strategy:     msg.Strategy,
		StartKeyword: msg.StartKeyword,
		EndKeyword:   msg.EndKeyword,
	}

	result := s.run(r.Context(), msg, req)

	s.logger.Info("extract",
		"request_id", reqID,
		"strategy", string(msg.Strategy),
		"status", result.Status,
		"bytes", len(result.Content),
		"duration", time.Since(start),
	)
	writeJSON(w, http.StatusOK, result)
}

// run performs the navigation (if requested), capture, and extraction.
// Failures before the pipeline surface as error results, never as HTTP
// errors.
func (s *Server) run(ctx context.Context, msg Message, req tabread.ExtractionRequest) *tabread.ExtractionResult {
	if msg.Action == ActionNavigateAndExtract {
		if err := s.tabs.Open(ctx, msg.URL); err != nil {
			return &tabread.ExtractionResult{
				Status: tabread.StatusError,
				URL:    msg.URL,
				Error:  tabread.ErrorMessage(err),
			}
		}
	}

	snap, err := s.tabs.Snapshot(ctx)
	if err != nil {
		return &tabread.ExtractionResult{
			Status: tabread.StatusError,
			Error:  tabread.ErrorMessage(err),
		}
	}
	return s.extractor.Extract(ctx, snap, req)
}

func (s *Server) handleCapabilities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.extractor.Capabilities())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
