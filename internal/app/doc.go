// Package app is marquee's composition root.
//
// # Startup
//
// Bootstrap resolves everything a front end needs, in order:
//
//  1. Load ~/.config/marquee/config.toml (or Options.ConfigPath)
//  2. Open the zap file logger named by log_file at log_level
//  3. Load the YAML catalog from Options.CatalogPath or catalog_file, if set;
//     otherwise the built-in catalog is used
//  4. Build a state.Session that exports history into export_dir
//
// Run then loads the saved theme from prefs and hands the session to the
// Bubble Tea UI, blocking until the user quits or ctx is cancelled.
//
// The command-line subcommands call Bootstrap directly and never start the UI.
//
// # Errors
//
// Bootstrap fails on a malformed config file, an unknown log level, an
// unwritable log path, or a catalog file that is missing or invalid. A
// missing config or prefs file is not an error.
package app
