package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"

	"github.com/shinji-kodama/reactor-reboot/internal/model"
)

// DefaultFileName is the config file looked up in the working directory
// when no explicit path is given.
const DefaultFileName = ".reactor-reboot.jsonc"

// File is the raw structure of a config file. Pointer and empty-string
// fields mean "not set".
type File struct {
	// Mode is one of "bounded", "unrestricted" or "both".
	Mode string `json:"mode,omitempty"`

	// Bound is the half-width of the bounded-mode initialization cube.
	Bound *int64 `json:"bound,omitempty"`

	// Format is one of "text", "json" or "yaml".
	Format string `json:"format,omitempty"`

	// Dump includes the final lit boxes in the output.
	Dump *bool `json:"dump,omitempty"`
}

// Config holds resolved settings for a run.
type Config struct {
	Mode   model.Mode
	Bound  int64
	Format model.OutputFormat
	Dump   bool
}

// Default returns the built-in settings: both passes, the [-50, 50] cube,
// text output and no box dump.
func Default() Config {
	return Config{
		Mode:   model.ModeBoth,
		Bound:  model.DefaultBound,
		Format: model.FormatText,
	}
}

// Find returns the path of DefaultFileName inside dir, and whether it exists.
func Find(dir string) (string, bool) {
	path := filepath.Join(dir, DefaultFileName)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return path, false
	}
	return path, true
}

// Load reads a config file, strips JSONC comments, and parses it into a
// File. Unknown fields are rejected so that typos do not pass silently.
//
// Errors are returned as *model.CLIError with KindConfig.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.WrapCLIError(model.KindConfig,
			fmt.Sprintf("cannot read config file %s", path), err)
	}

	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.DisallowUnknownFields()

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, model.WrapCLIError(model.KindConfig,
			fmt.Sprintf("failed to parse config file %s", path), err)
	}
	return &f, nil
}

// Resolve validates f and merges its values over base.
// All validation problems are joined into one KindConfig error.
func (f *File) Resolve(base Config) (Config, error) {
	if problems := Validate(f); len(problems) > 0 {
		errs := make([]error, 0, len(problems))
		for i := range problems {
			errs = append(errs, &problems[i])
		}
		return Config{}, model.WrapCLIError(model.KindConfig, "invalid config", errors.Join(errs...))
	}

	cfg := base
	if f.Mode != "" {
		cfg.Mode, _ = model.ParseMode(f.Mode)
	}
	if f.Bound != nil {
		cfg.Bound = *f.Bound
	}
	if f.Format != "" {
		cfg.Format, _ = model.ParseOutputFormat(f.Format)
	}
	if f.Dump != nil {
		cfg.Dump = *f.Dump
	}
	return cfg, nil
}
