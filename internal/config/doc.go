// Package config loads the gallery's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/gallery/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/gallery/config.toml
//   - Catalog: built-in samples (catalog_path unset)
//   - Download directory: current working directory
//   - Toast timeout: 2000 ms
//   - Log file: ~/.local/state/gallery/gallery.log
//
// # TOML Format
//
//	catalog_path = "~/snippets/catalog.toml"
//	download_dir = "~/Downloads"
//	toast_timeout_ms = 2000
//	log_path = "~/.local/state/gallery/gallery.log"
//	debug = false
//
// Paths starting with ~ are expanded against the user's home directory and
// made absolute.
//
// # Error Handling
//
// A missing file is not an error. An unreadable file or invalid TOML is, and
// the error mentions "open config", "read config" or "parse config" so the
// user can tell which step failed. The theme preference does not live here;
// see the prefs package.
package config
