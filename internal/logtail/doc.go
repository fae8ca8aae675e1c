// Package logtail reads the gallery's JSON log file for display.
//
// Read returns the last N lines of a file with a single pass and a ring
// buffer of N entries, so large logs never load fully into memory. Parse
// decodes one zap JSON line into an Entry; Format and Colorize turn an Entry
// back into a compact human-readable line:
//
//	2026-10-14T09:00:00.000Z INFO [gallery] program saved id=p2 path=/tmp/Counter_(JS).txt
//
// Colorize styles the timestamp, level, logger and fields with Lipgloss.
// Lines that are not JSON (a panic trace, a truncated write) pass through
// FormatLines unchanged.
//
// Read returns nil, nil for a missing file. Other I/O errors are wrapped.
package logtail
