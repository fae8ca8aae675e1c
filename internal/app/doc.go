// Package app provides the orchestration layer for the gallery.
//
// # Overview
//
// This package wires together configuration, logging, the program catalog,
// theme preferences and the UI. It serves as the composition root where all
// dependencies are initialized and connected.
//
// # Architecture
//
// Setup follows a simple initialization pattern:
//
//  1. Load settings from ~/.config/gallery/config.toml (missing file → defaults)
//  2. Apply command-line overrides for the catalog path and download dir
//  3. Open the JSON log file; failure degrades to a no-op logger
//  4. Load the catalog file, or fall back to the built-in samples
//  5. Build gallery.Controller with the prefs-backed theme store, the system
//     clipboard and a saver for the download dir
//
// Run then starts the TUI and blocks until the user exits or the context
// is cancelled. The CLI subcommands call Setup directly and use the
// controller and catalog without a terminal UI.
//
// # Error Handling
//
// Config and catalog errors are fatal and returned wrapped. A log file that
// cannot be opened is reported through Env.LogErr and never stops startup.
package app
