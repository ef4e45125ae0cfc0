// Package tabread provides a content-extraction pipeline for live browser
// tabs. It captures a rendered page snapshot, sanitizes away active content,
// reduces the document to its primary article, optionally bounds the output
// to a keyword-delimited range, and returns a structured, timed result.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, readability/, rod/).
package tabread
