package reboot

import (
	"io"
	"iter"
	"slices"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/shinji-kodama/reactor-reboot/internal/geom"
	"github.com/shinji-kodama/reactor-reboot/internal/model"
	"github.com/shinji-kodama/reactor-reboot/internal/region"
)

// Options configures a reboot run.
type Options struct {
	// Mode selects the passes to run. Defaults to model.ModeBoth.
	Mode model.Mode

	// Bound is the half-width of the initialization cube used by the
	// bounded pass. Defaults to model.DefaultBound.
	Bound int64

	// KeepBoxes retains the final lit boxes of every pass in the result.
	KeepBoxes bool

	// Logger receives per-pass debug fields. Defaults to a discarding logger.
	Logger logrus.FieldLogger
}

// PassResult is the outcome of one pass over the instructions.
type PassResult struct {
	Mode    model.Mode `json:"mode" yaml:"mode"`
	Applied int        `json:"applied" yaml:"applied"`
	Skipped int        `json:"skipped" yaml:"skipped"`
	Volume  int64      `json:"volume" yaml:"volume"`
	Boxes   int        `json:"boxes" yaml:"boxes"`
	Lit     []geom.Box `json:"lit,omitempty" yaml:"lit,omitempty"`
}

// Report collects the passes of a run in execution order.
type Report struct {
	Passes []PassResult `json:"passes" yaml:"passes"`
}

// Volumes returns the lit volume of every pass in order.
func (r Report) Volumes() []int64 {
	return lo.Map(r.Passes, func(p PassResult, _ int) int64 { return p.Volume })
}

// InitCube returns the initialization cube [-bound, bound]^3.
func InitCube(bound int64) geom.Box {
	return geom.Cube(-bound, bound)
}

// Fold applies every instruction of seq, in order, to a fresh set.
func Fold(seq iter.Seq[region.Instruction]) *region.Set {
	set := region.New()
	for in := range seq {
		set.Apply(in)
	}
	return set
}

// Run executes the passes selected by opts over instructions.
func Run(instructions []region.Instruction, opts Options) Report {
	opts = withDefaults(opts)

	var report Report
	for _, mode := range opts.Mode.Passes() {
		report.Passes = append(report.Passes, runPass(instructions, mode, opts))
	}
	return report
}

func withDefaults(opts Options) Options {
	if opts.Mode == "" {
		opts.Mode = model.ModeBoth
	}
	if opts.Bound == 0 {
		opts.Bound = model.DefaultBound
	}
	if opts.Logger == nil {
		l := logrus.New()
		l.Out = io.Discard
		opts.Logger = l
	}
	return opts
}

// runPass folds the instructions selected by mode into a fresh set.
func runPass(instructions []region.Instruction, mode model.Mode, opts Options) PassResult {
	selected := instructions
	if mode == model.ModeBounded {
		cube := InitCube(opts.Bound)
		selected = lo.Filter(instructions, func(in region.Instruction, _ int) bool {
			return cube.Contains(in.Box)
		})
	}

	set := Fold(slices.Values(selected))
	result := PassResult{
		Mode:    mode,
		Applied: len(selected),
		Skipped: len(instructions) - len(selected),
		Volume:  set.Volume(),
		Boxes:   set.Len(),
	}
	if opts.KeepBoxes {
		result.Lit = set.Boxes()
	}

	stats := set.Stats()
	opts.Logger.WithFields(logrus.Fields{
		"mode":       mode,
		"applied":    result.Applied,
		"skipped":    result.Skipped,
		"boxes":      result.Boxes,
		"volume":     result.Volume,
		"splits":     stats.Splits,
		"discarded":  stats.Discarded,
		"superseded": stats.Superseded,
	}).Debug("pass complete")

	return result
}
