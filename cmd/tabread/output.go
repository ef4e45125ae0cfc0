package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tabread/tabread"
)

// mode selects what part of a result is printed.
type mode int

const (
	modeJSON mode = iota
	modePlain
	modeTitle
	modeURL
)

// outputMode maps output flags to a mode. JSON is the default.
func outputMode(cli *CLI) mode {
	switch {
	case cli.Title:
		return modeTitle
	case cli.URL:
		return modeURL
	case cli.Plain:
		return modePlain
	default:
		return modeJSON
	}
}

// writeResult prints a single extraction result.
func writeResult(w io.Writer, res *tabread.ExtractionResult, m mode) error {
	switch m {
	case modeTitle:
		_, err := fmt.Fprintln(w, res.Title)
		return err
	case modeURL:
		_, err := fmt.Fprintln(w, res.URL)
		return err
	case modePlain:
		if res.Status != tabread.StatusSuccess {
			return nil
		}
		_, err := fmt.Fprintln(w, res.Content)
		return err
	default:
		return encodeJSON(w, res)
	}
}

// writeResults prints a batch of extraction results as a JSON array.
func writeResults(w io.Writer, results []*tabread.ExtractionResult) error {
	return encodeJSON(w, results)
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
