// Package config loads optional defaults for the reactor-reboot CLI.
//
// The config file is JSONC (JSON with comments and trailing commas), so
// this package uses github.com/tidwall/jsonc to strip comments before
// parsing with encoding/json. Every field is optional; command-line flags
// take precedence over values from the file.
//
// Key responsibilities:
//   - Locate the config file in the working directory
//   - Load and parse it (with JSONC support)
//   - Validate field values and report every problem at once
//   - Merge file values over the built-in defaults
package config
