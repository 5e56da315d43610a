package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/az-ai-labs/id-lang-nlp/data"
	"github.com/az-ai-labs/id-lang-nlp/internal/smoke"
)

const (
	defaultTo       = 1_000_000
	defaultWorkers  = 4
	maxFailuresShow = 20
)

// errFailed signals failed checks after the report has been printed.
var errFailed = errors.New("smoketest: checks failed")

// rootOptions holds global flags for all commands.
type rootOptions struct {
	Verbose bool
	NoColor bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "smoketest",
		Short:         "Check Indonesian number spelling against cases and ranges",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.NoColor {
				color.NoColor = true
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable colored output")

	cmd.AddCommand(newCasesCommand(opts))
	cmd.AddCommand(newSweepCommand(opts))

	return cmd
}

func newCasesCommand(opts *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "cases",
		Short: "Run expected conversions from a YAML case file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)

			src, name, err := readCases(file)
			if err != nil {
				logger.Error("reading cases", "file", file, "err", err)
				return err
			}
			cases, err := smoke.LoadCases(bytes.NewReader(src))
			if err != nil {
				logger.Error("loading cases", "file", name, "err", err)
				return err
			}
			logger.Debug("loaded cases", "file", name, "count", len(cases))

			start := time.Now()
			report := smoke.RunCases(cases)
			logger.Debug("cases done", "elapsed", time.Since(start).Round(time.Millisecond))

			return printReport(cmd.OutOrStdout(), name, report)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "case file (default: embedded data/smoke_cases.yaml)")

	return cmd
}

func newSweepCommand(opts *rootOptions) *cobra.Command {
	var (
		from, to int64
		workers  int
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Check word form and round trip for every integer in [from, to)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)
			logger.Info("sweep started", "from", from, "to", to, "workers", workers)

			start := time.Now()
			report, err := smoke.Sweep(cmd.Context(), from, to, workers)
			if err != nil {
				logger.Error("sweep stopped", "checked", report.Checked, "err", err)
				return err
			}
			logger.Info("sweep done", "checked", report.Checked, "elapsed", time.Since(start).Round(time.Millisecond))

			return printReport(cmd.OutOrStdout(), fmt.Sprintf("sweep [%d, %d)", from, to), report)
		},
	}

	cmd.Flags().Int64Var(&from, "from", 0, "first integer (inclusive)")
	cmd.Flags().Int64Var(&to, "to", defaultTo, "last integer (exclusive)")
	cmd.Flags().IntVarP(&workers, "workers", "w", defaultWorkers, "concurrent batches")

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// readCases returns the case file contents and a display name.
func readCases(path string) ([]byte, string, error) {
	if path == "" {
		return data.SmokeCases, "embedded", nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, path, err
	}
	return src, path, nil
}

func printReport(w io.Writer, title string, r smoke.Report) error {
	pass := color.New(color.FgGreen, color.Bold).SprintFunc()
	fail := color.New(color.FgRed, color.Bold).SprintFunc()

	if r.OK() {
		fmt.Fprintf(w, "%s %s: %d checked\n", pass("PASS"), title, r.Checked)
		return nil
	}

	fmt.Fprintf(w, "%s %s: %d of %d failed\n", fail("FAIL"), title, len(r.Failures), r.Checked)
	for i, f := range r.Failures {
		if i == maxFailuresShow {
			fmt.Fprintf(w, "  ... %d more\n", len(r.Failures)-maxFailuresShow)
			break
		}
		fmt.Fprintf(w, "  %s\n", f)
	}
	return errFailed
}
