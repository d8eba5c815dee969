// Package model defines the shared value types of the reactor-reboot CLI.
//
// It holds the processing modes and output formats selectable from flags or
// the config file, the process exit codes, and a custom error type
// (CLIError) that carries an exit code and an error kind so the CLI layer
// can decide how to report a failure.
package model
