package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMode_IsValid checks that only defined modes pass validation.
func TestMode_IsValid(t *testing.T) {
	assert.True(t, ModeBounded.IsValid())
	assert.True(t, ModeUnrestricted.IsValid())
	assert.True(t, ModeBoth.IsValid())
	assert.False(t, Mode("partial").IsValid())
	assert.False(t, Mode("").IsValid())
}

// TestParseMode verifies string-to-mode conversion, including case
// normalization and error cases.
func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
		hasError bool
	}{
		{"bounded", ModeBounded, false},
		{"unrestricted", ModeUnrestricted, false},
		{"both", ModeBoth, false},
		{"Bounded", ModeBounded, false}, // case insensitive
		{"BOTH", ModeBoth, false},       // case insensitive
		{"part1", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseMode(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

// TestMode_Passes verifies that "both" expands to bounded then unrestricted.
func TestMode_Passes(t *testing.T) {
	assert.Equal(t, []Mode{ModeBounded}, ModeBounded.Passes())
	assert.Equal(t, []Mode{ModeUnrestricted}, ModeUnrestricted.Passes())
	assert.Equal(t, []Mode{ModeBounded, ModeUnrestricted}, ModeBoth.Passes())
}

// TestParseOutputFormat verifies string-to-format conversion.
func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected OutputFormat
		hasError bool
	}{
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"YAML", FormatYAML, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseOutputFormat(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

// TestCLIError verifies the custom error type used for exit code mapping.
func TestCLIError(t *testing.T) {
	t.Run("simple error", func(t *testing.T) {
		err := NewCLIError(KindUsage, "accepts 1 arg, received 0")
		assert.Equal(t, ExitGeneralError, err.Code)
		assert.Equal(t, KindUsage, err.Kind)
		assert.Equal(t, "accepts 1 arg, received 0", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("wrapped error", func(t *testing.T) {
		inner := errors.New("no such file or directory")
		err := WrapCLIError(KindIO, "cannot read instruction file", inner)
		assert.Equal(t, ExitGeneralError, err.Code)
		assert.Equal(t, KindIO, err.Kind)
		assert.Contains(t, err.Error(), "no such file or directory")
		assert.Equal(t, inner, err.Unwrap())
	})

	// errors.As must find the CLIError through an fmt.Errorf wrapper.
	t.Run("errors.As chain", func(t *testing.T) {
		inner := errors.New("bad line")
		wrapped := fmt.Errorf("loading: %w", WrapCLIError(KindParse, "invalid instruction", inner))

		var cliErr *CLIError
		require.True(t, errors.As(wrapped, &cliErr))
		assert.Equal(t, KindParse, cliErr.Kind)
		assert.True(t, errors.Is(wrapped, inner))
	})
}
