// Package config loads egcctl's own configuration file.
//
// # Overview
//
// egcctl works without any configuration: the status document is found in
// Game Capture's platform config directory and every other setting has a
// default. A TOML file can override them.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided (--config), use it
//  2. Otherwise, use ~/.config/egcctl/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. Fields that are missing, empty or non-positive keep their defaults
//
// # TOML Format
//
//	document_path = "~/EGCAPILite.json" # default: <config root>/Elgato/GameCapture/EGCAPILite/EGCAPILite.json
//	poll_seconds = 1                     # dashboard refresh cadence
//	flashback_seconds = 30               # default Flashback Recording length
//	log_level = "info"                   # debug | info | warn | error
//	log_format = "console"               # console | json
//
// Tilde expansion is applied to document_path.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors ("parse config: ...")
//
// Load does not check that document_path exists; egcapi.NewClient does that
// when the client is built.
package config
