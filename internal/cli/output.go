// Package cli — output.go formats a reboot report for stdout.
//
// Text output is one integer per line, one line per pass, which is the
// format scripts rely on. JSON and YAML output wrap the same numbers in a
// report object that also carries per-pass counters and, with --dump, the
// lit boxes.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/reactor-reboot/internal/config"
	"github.com/shinji-kodama/reactor-reboot/internal/instruction"
	"github.com/shinji-kodama/reactor-reboot/internal/model"
	"github.com/shinji-kodama/reactor-reboot/internal/reboot"
	"github.com/shinji-kodama/reactor-reboot/internal/region"
)

// reportDoc is the JSON/YAML output structure. Bound is only meaningful
// when a bounded pass ran, so it is omitted otherwise.
type reportDoc struct {
	Mode   model.Mode          `json:"mode" yaml:"mode"`
	Bound  int64               `json:"bound,omitempty" yaml:"bound,omitempty"`
	Passes []reboot.PassResult `json:"passes" yaml:"passes"`
}

// printReport writes report to w in the format selected by cfg.
func printReport(w io.Writer, report reboot.Report, cfg config.Config) error {
	switch cfg.Format {
	case model.FormatJSON:
		return printReportJSON(w, newReportDoc(report, cfg))
	case model.FormatYAML:
		return printReportYAML(w, newReportDoc(report, cfg))
	default:
		return printReportText(w, report, cfg.Dump)
	}
}

func newReportDoc(report reboot.Report, cfg config.Config) reportDoc {
	doc := reportDoc{
		Mode: cfg.Mode,
		// Use an empty slice instead of nil so JSON shows [] rather than null.
		Passes: make([]reboot.PassResult, 0, len(report.Passes)),
	}
	doc.Passes = append(doc.Passes, report.Passes...)
	if cfg.Mode != model.ModeUnrestricted {
		doc.Bound = cfg.Bound
	}
	return doc
}

// printReportText prints one volume per line. With dump set, the lit boxes
// of the last pass follow as "on" instructions, so the dump is itself a
// valid instruction file describing the same lit region.
func printReportText(w io.Writer, report reboot.Report, dump bool) error {
	for _, v := range report.Volumes() {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	if !dump || len(report.Passes) == 0 {
		return nil
	}

	last := report.Passes[len(report.Passes)-1]
	for _, b := range last.Lit {
		line := instruction.Format(region.Instruction{On: true, Box: b})
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write lit boxes: %w", err)
		}
	}
	return nil
}

// printReportJSON outputs the report as indented JSON.
func printReportJSON(w io.Writer, doc reportDoc) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report as JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printReportYAML outputs the report as YAML with 2-space indentation.
func printReportYAML(w io.Writer, doc reportDoc) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode report as YAML: %w", err)
	}
	return enc.Close()
}
