package config

import (
	"fmt"

	"github.com/shinji-kodama/reactor-reboot/internal/model"
)

// ValidationError represents a specific validation failure in a config file.
type ValidationError struct {
	// Field is the JSON field that failed validation (e.g., "bound").
	Field string

	// Message describes what's wrong with the field value.
	Message string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s: %s", e.Field, e.Message)
}

// Validate checks the values set in f. It returns a list of validation
// errors (empty list = valid configuration).
//
// Checks performed:
//   - mode must name a known mode
//   - bound must be positive
//   - format must name a known output format
func Validate(f *File) []ValidationError {
	var errs []ValidationError

	if f.Mode != "" {
		if _, err := model.ParseMode(f.Mode); err != nil {
			errs = append(errs, ValidationError{Field: "mode", Message: err.Error()})
		}
	}

	// Zero means "unset" to reboot.Options, so it cannot be configured.
	if f.Bound != nil && *f.Bound <= 0 {
		errs = append(errs, ValidationError{
			Field:   "bound",
			Message: fmt.Sprintf("must be positive, got %d", *f.Bound),
		})
	}

	if f.Format != "" {
		if _, err := model.ParseOutputFormat(f.Format); err != nil {
			errs = append(errs, ValidationError{Field: "format", Message: err.Error()})
		}
	}

	return errs
}
