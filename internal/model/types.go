package model

import (
	"fmt"
	"strings"
)

// Mode selects which instructions a reboot run applies.
type Mode string

const (
	// ModeBounded applies only instructions whose box lies within the
	// initialization cube [-bound, bound] on every axis.
	ModeBounded Mode = "bounded"

	// ModeUnrestricted applies every instruction regardless of coordinates.
	ModeUnrestricted Mode = "unrestricted"

	// ModeBoth runs the bounded pass first and then, from scratch, the
	// unrestricted pass. Both results are reported in that order.
	ModeBoth Mode = "both"
)

// String returns the string representation of Mode.
func (m Mode) String() string {
	return string(m)
}

// IsValid checks whether the Mode value is one of the predefined modes.
func (m Mode) IsValid() bool {
	switch m {
	case ModeBounded, ModeUnrestricted, ModeBoth:
		return true
	default:
		return false
	}
}

// Passes expands the mode into the ordered list of single passes to run.
// ModeBoth yields the bounded pass first.
func (m Mode) Passes() []Mode {
	if m == ModeBoth {
		return []Mode{ModeBounded, ModeUnrestricted}
	}
	return []Mode{m}
}

// ParseMode converts a string to a Mode.
// Returns an error if the string does not match any valid mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(strings.ToLower(s))
	if !mode.IsValid() {
		return "", fmt.Errorf("invalid mode: %q (valid: bounded, unrestricted, both)", s)
	}
	return mode, nil
}

// OutputFormat selects how results are written to stdout.
type OutputFormat string

const (
	// FormatText prints one integer per line.
	FormatText OutputFormat = "text"

	// FormatJSON prints an indented JSON report.
	FormatJSON OutputFormat = "json"

	// FormatYAML prints a YAML report.
	FormatYAML OutputFormat = "yaml"
)

// String returns the string representation of OutputFormat.
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks whether the OutputFormat value is one of the predefined formats.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseOutputFormat converts a string to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(s))
	if !format.IsValid() {
		return "", fmt.Errorf("invalid output format: %q (valid: text, json, yaml)", s)
	}
	return format, nil
}

// DefaultBound is the half-width of the initialization cube used by
// bounded mode: instructions must lie within [-50, 50] on every axis.
const DefaultBound int64 = 50

// ExitCode defines the CLI exit codes. Every failure is fatal and exits
// with ExitGeneralError; the kind of failure is carried separately in
// CLIError.Kind.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates the command failed.
	ExitGeneralError ExitCode = 1
)

// ErrorKind classifies a fatal CLI failure.
type ErrorKind string

const (
	// KindUsage is a wrong number of arguments or an invalid flag value.
	KindUsage ErrorKind = "usage"

	// KindIO is a failure to open or read the instruction file.
	KindIO ErrorKind = "io"

	// KindParse is an instruction line that does not match the grammar.
	KindParse ErrorKind = "parse"

	// KindConfig is an unreadable or invalid config file.
	KindConfig ErrorKind = "config"
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Kind tells the CLI how to report the failure; usage errors are
	// followed by the command usage text.
	Kind ErrorKind

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError of the given kind with exit code 1.
func NewCLIError(kind ErrorKind, message string) *CLIError {
	return &CLIError{Code: ExitGeneralError, Kind: kind, Message: message}
}

// WrapCLIError creates a new CLIError of the given kind that wraps err.
func WrapCLIError(kind ErrorKind, message string, err error) *CLIError {
	return &CLIError{Code: ExitGeneralError, Kind: kind, Message: message, Err: err}
}
