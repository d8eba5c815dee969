// Package cli implements the cobra-based command line for reactor-reboot.
//
// The tool has a single root command that takes the instruction file as its
// only positional argument. This file defines that command, the flag and
// config-file resolution, and the error-to-exit-code handling. Result
// formatting lives in output.go.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/reactor-reboot/internal/config"
	"github.com/shinji-kodama/reactor-reboot/internal/instruction"
	"github.com/shinji-kodama/reactor-reboot/internal/model"
	"github.com/shinji-kodama/reactor-reboot/internal/reboot"
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// rootFlags holds the flag values for the root command.
// These are bound to cobra flags in NewRootCommand.
type rootFlags struct {
	mode       string
	bound      int64
	format     string
	dump       bool
	configPath string
	verbose    bool
}

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "reactor-reboot <instruction-file>",
		Short: "Count the cubes left on after a reactor reboot sequence",
		Long: `reactor-reboot reads a file of reboot instructions, one per line:

  on x=10..12,y=10..12,z=10..12
  off x=9..11,y=9..11,z=9..11

and prints how many unit cubes are on after applying them in order.

By default two results are printed: first for the instructions that lie
entirely inside the initialization cube [-50,50] on every axis, then for
the full sequence.

Defaults for the flags below may be set in a JSONC config file, either
passed with --config or found as .reactor-reboot.jsonc in the working
directory.

Examples:
  reactor-reboot input.txt
  reactor-reboot --mode unrestricted input.txt
  reactor-reboot --format yaml --dump input.txt`,

		Args: exactArgs(1),

		// Errors and usage are printed by Execute so that usage errors,
		// and only those, are followed by the usage text.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, flags, args[0])
		},
	}

	rootCmd.Flags().StringVar(&flags.mode, "mode", string(model.ModeBoth),
		"Passes to run: bounded, unrestricted, both")
	rootCmd.Flags().Int64Var(&flags.bound, "bound", model.DefaultBound,
		"Half-width of the initialization cube used by the bounded pass")
	rootCmd.Flags().StringVar(&flags.format, "format", string(model.FormatText),
		"Output format: text, json, yaml")
	rootCmd.Flags().BoolVar(&flags.dump, "dump", false,
		"Also print the final lit boxes")
	rootCmd.Flags().StringVar(&flags.configPath, "config", "",
		"Path to a JSONC config file (default: ./"+config.DefaultFileName+" if present)")
	rootCmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false,
		"Enable verbose output")

	// Flag parse failures are usage errors, like a wrong argument count.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return model.WrapCLIError(model.KindUsage, "invalid flag", err)
	})

	return rootCmd
}

// exactArgs is cobra.ExactArgs reporting a usage-kind CLIError.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return model.WrapCLIError(model.KindUsage, "wrong number of arguments", err)
		}
		return nil
	}
}

// runRoot resolves settings, reads the instructions, runs the reboot
// passes and prints the report.
func runRoot(cmd *cobra.Command, flags *rootFlags, path string) error {
	log := newLogger(cmd.ErrOrStderr(), flags.verbose)

	// Step 1: Resolve settings: built-in defaults < config file < flags.
	cfg, err := resolveConfig(cmd, flags, log)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"mode":   cfg.Mode,
		"bound":  cfg.Bound,
		"format": cfg.Format,
		"dump":   cfg.Dump,
	}).Debug("settings resolved")

	// Step 2: Read and parse the whole instruction file.
	instructions, err := instruction.ReadFile(path)
	if err != nil {
		return err
	}
	log.WithField("instructions", len(instructions)).Debugf("read %s", path)

	// Step 3: Run the passes and print the results.
	report := reboot.Run(instructions, reboot.Options{
		Mode:      cfg.Mode,
		Bound:     cfg.Bound,
		KeepBoxes: cfg.Dump,
		Logger:    log,
	})
	return printReport(cmd.OutOrStdout(), report, cfg)
}

// resolveConfig merges the config file (explicit or discovered) over the
// defaults, then applies every flag the user set explicitly.
func resolveConfig(cmd *cobra.Command, flags *rootFlags, log logrus.FieldLogger) (config.Config, error) {
	cfg := config.Default()

	path := flags.configPath
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			if found, ok := config.Find(wd); ok {
				path = found
			}
		}
	}
	if path != "" {
		log.Debugf("loading config %s", path)
		file, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		if cfg, err = file.Resolve(cfg); err != nil {
			return config.Config{}, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("mode") {
		mode, err := model.ParseMode(flags.mode)
		if err != nil {
			return config.Config{}, model.WrapCLIError(model.KindUsage, "invalid --mode", err)
		}
		cfg.Mode = mode
	}
	if changed("bound") {
		if flags.bound <= 0 {
			return config.Config{}, model.NewCLIError(model.KindUsage,
				fmt.Sprintf("invalid --bound %d: must be positive", flags.bound))
		}
		cfg.Bound = flags.bound
	}
	if changed("format") {
		format, err := model.ParseOutputFormat(flags.format)
		if err != nil {
			return config.Config{}, model.WrapCLIError(model.KindUsage, "invalid --format", err)
		}
		cfg.Format = format
	}
	if changed("dump") {
		cfg.Dump = flags.dump
	}
	return cfg, nil
}

// newLogger returns a logrus logger writing to w. Verbose mode enables
// debug entries; otherwise only warnings and errors are shown.
func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.Out = w
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// Execute runs the root command and exits the process with the resulting
// exit code. This is the main entry point called from main.go.
func Execute(rootCmd *cobra.Command) {
	os.Exit(int(run(rootCmd)))
}

// run executes rootCmd and reports any error on its error stream.
//
// CLIError values carry their own exit code; other errors default to
// exit code 1. Usage errors are followed by the command usage.
func run(rootCmd *cobra.Command) model.ExitCode {
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return model.ExitSuccess
	}

	stderr := rootCmd.ErrOrStderr()
	jsonOutput := isJSONRequested(cmd)

	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		printError(stderr, jsonOutput, cliErr.Message, cliErr.Err)
		if cliErr.Kind == model.KindUsage {
			fmt.Fprint(stderr, cmd.UsageString())
		}
		return cliErr.Code
	}

	printError(stderr, jsonOutput, err.Error(), nil)
	return model.ExitGeneralError
}

// isJSONRequested reports whether --format json was given, so that errors
// can match the requested output format.
func isJSONRequested(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}
	f := cmd.Flags().Lookup("format")
	return f != nil && f.Changed && f.Value.String() == string(model.FormatJSON)
}

// printError outputs an error message to w in the appropriate format.
func printError(w io.Writer, jsonOutput bool, message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}
