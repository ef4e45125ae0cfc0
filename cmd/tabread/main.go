package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/tabread/tabread"
	"github.com/tabread/tabread/extract"
	"github.com/tabread/tabread/gemini"
	"github.com/tabread/tabread/goquery"
	"github.com/tabread/tabread/htmltomarkdown"
	tabhttp "github.com/tabread/tabread/http"
	"github.com/tabread/tabread/readability"
	"github.com/tabread/tabread/rod"
	tabslog "github.com/tabread/tabread/slog"
	"github.com/tabread/tabread/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Strategy   string        `default:"three-phase" enum:"simple,three-phase" help:"Extraction strategy"`
	Start      string        `help:"Bound content from the first occurrence of this keyword"`
	End        string        `help:"Bound content through the first occurrence of this keyword"`
	ExcludeEnd bool          `help:"Drop the end keyword match from the output instead of retaining it"`
	Reducer    string        `default:"readability" enum:"readability,trafilatura,density" help:"Boilerplate reducer implementation"`
	Budget     time.Duration `default:"30s" help:"Time budget per extraction"`
	Timeout    time.Duration `short:"t" default:"10s" help:"Tab capture timeout"`
	ControlURL string        `help:"Attach to a running browser (DevTools URL, host:port, or debugging port)"`
	Open       string        `help:"Open this URL in a new tab and extract it instead of the active tab"`
	AllTabs    bool          `help:"Extract every open tab instead of the active one"`
	Analyze    string        `help:"Analyze extracted content with Gemini using this instruction"`
	Serve      string        `help:"Serve the HTTP extraction adapter on this address instead of extracting once"`
	Plain      bool          `help:"Print extracted content only"`
	Title      bool          `help:"Print only the tab title"`
	URL        bool          `help:"Print only the tab URL"`
	Verbose    bool          `short:"v" help:"Log pipeline progress to stderr"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("tabread"),
		kong.Description("Extract clean content from live browser tabs"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	// Wire the browser source
	sourceOpts := []rod.Option{rod.WithSnapshotTimeout(cli.Timeout)}
	if cli.ControlURL != "" {
		sourceOpts = append(sourceOpts, rod.WithControlURL(cli.ControlURL))
	}
	source, err := rod.NewTabSource(sourceOpts...)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or pass --control-url to attach to a running browser")
		return fmt.Errorf("failed to open browser: %w", err)
	}
	defer source.Close()

	tabs := tabslog.NewLoggingTabSource(source, logger)

	// Wire the pipeline
	reducer, err := selectReducer(cli.Reducer)
	if err != nil {
		return err
	}

	endPolicy := tabread.EndInclusive
	if cli.ExcludeEnd {
		endPolicy = tabread.EndExclusive
	}

	orchestrator := &extract.Orchestrator{
		Sanitizer: goquery.NewSanitizer(),
		Reducer:   tabslog.NewLoggingReducer(reducer, logger),
		Converter: htmltomarkdown.NewConverter(),
		Budget:    cli.Budget,
		EndPolicy: endPolicy,
	}

	if cli.Serve != "" {
		server := tabhttp.NewServer(tabs, orchestrator,
			tabhttp.WithLogger(logger),
			tabhttp.WithRateLimit(1, 3),
		)
		fmt.Fprintf(stderr, "serving extraction adapter on %s\n", cli.Serve)
		return nethttp.ListenAndServe(cli.Serve, server.Handler())
	}

	if cli.Open != "" {
		if err := tabs.Open(ctx, cli.Open); err != nil {
			return fmt.Errorf("failed to open %s: %w", cli.Open, err)
		}
	}

	req := tabread.ExtractionRequest{
		Strategy:     tabread.Strategy(cli.Strategy),
		StartKeyword: cli.Start,
		EndKeyword:   cli.End,
	}

	if cli.AllTabs {
		snaps, err := tabs.Snapshots(ctx)
		if err != nil {
			return fmt.Errorf("failed to capture tabs: %w", err)
		}
		results := orchestrator.ExtractAll(ctx, snaps, req)
		return writeResults(stdout, results)
	}

	snap, err := tabs.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to capture tab: %w", err)
	}

	result := orchestrator.Extract(ctx, snap, req)

	if cli.Analyze != "" && result.Status == tabread.StatusSuccess {
		analysis, err := m.analyze(ctx, result.Content, cli.Analyze)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, analysis)
		return nil
	}

	if err := writeResult(stdout, result, outputMode(cli)); err != nil {
		return err
	}
	if result.Status != tabread.StatusSuccess {
		return fmt.Errorf("extraction failed: %s", result.Error)
	}
	return nil
}

// analyze sends extracted content to Gemini.
func (m *Main) analyze(ctx context.Context, content, instruction string) (string, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return gemini.NewAnalyzer(client).Analyze(ctx, content, instruction)
}

// selectReducer maps the flag value to a Reducer implementation.
func selectReducer(name string) (tabread.Reducer, error) {
	switch name {
	case "readability":
		return readability.NewReducer(), nil
	case "trafilatura":
		return trafilatura.NewReducer(), nil
	case "density":
		return goquery.NewDensityReducer(), nil
	default:
		return nil, fmt.Errorf("unknown reducer %q", name)
	}
}
