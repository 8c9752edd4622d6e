// Package config loads marquee's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/marquee/config.toml (default)
//  3. If the config file doesn't exist, fall back to built-in defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/marquee/config.toml
//   - Export directory: ~/Downloads
//   - Log file: ~/.local/share/marquee/marquee.log
//   - Log level: info
//   - Catalog file: none (the built-in catalog is used)
//
// # TOML Format
//
//	export_dir = "~/Downloads"
//	log_file = "~/.local/share/marquee/marquee.log"
//	log_level = "debug"
//	catalog_file = "~/archive/catalog.yaml"
//
// Every field is optional. Values are trimmed and paths get tilde expansion.
// log_level must be one of debug, info, warn or error.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - Unknown log levels (ErrInvalidLogLevel)
//
// Missing config files are NOT an error, so marquee runs without any setup.
package config
