package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/assignment/auction"
)

// config holds every flag of the root command.
type config struct {
	verbose       bool
	jsonOut       bool
	persons       int
	objects       int
	slackBenefit  float64
	slack         float64
	samples       int
	seed          int64
	maxIterations int
	input         string
}

// runner carries the parsed flags and the logger into the subroutines.
type runner struct {
	cfg    config
	logger *zap.Logger
	out    io.Writer
}

func newRootCmd() *cobra.Command {
	r := &runner{}
	cmd := &cobra.Command{
		Use:   "auctiondemo",
		Short: "Solve random or file-provided assignment problems with the auction solver",
		Long: `auctiondemo generates random benefit matrices (uniform in [0, 100)) and
assigns persons to objects with the forward/reverse auction solver, printing
the runtime and the resulting assignment.

Each sample uses the previous sample's seed plus one, so any sample can be
rerun on its own with --seed.

Example:
  auctiondemo -p 50 -o 80 -s 5 --seed 1
  auctiondemo -p 2 -o 3 -v
  auctiondemo --input problem.yaml --json`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logCfg := zap.NewProductionConfig()
			if r.cfg.verbose {
				logCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := logCfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			r.logger = logger
			r.out = cmd.OutOrStdout()

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if r.logger != nil {
				_ = r.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if r.cfg.input != "" {
				return r.runInput(cmd)
			}

			return r.runRandom()
		},
	}

	f := cmd.Flags()
	cmd.PersistentFlags().BoolVarP(&r.cfg.verbose, "verbose", "v", false, "Print benefits and assignments, enable debug logs")
	cmd.PersistentFlags().BoolVar(&r.cfg.jsonOut, "json", false, "Output in JSON format")
	f.IntVarP(&r.cfg.persons, "persons", "p", 2, "How many persons (agents) to generate")
	f.IntVarP(&r.cfg.objects, "objects", "o", 3, "How many objects (resources) to generate, >= persons")
	f.Float64VarP(&r.cfg.slackBenefit, "slack-benefit", "e", auction.DefaultSlackBenefit, "Benefit of leaving a person unassigned")
	f.Float64Var(&r.cfg.slack, "slack", auction.DefaultSlack, "Complementary-slackness tolerance (epsilon)")
	f.IntVarP(&r.cfg.samples, "samples", "s", 1, "How many random samples to run")
	f.Int64Var(&r.cfg.seed, "seed", 0, "Seed of the first sample (0 = current time)")
	f.IntVar(&r.cfg.maxIterations, "max-iterations", 0, "Abort a solve after this many bids (0 = unlimited)")
	f.StringVar(&r.cfg.input, "input", "", "Solve the YAML problem in this file instead of random samples")

	return cmd
}

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// report is the outcome of one solve, printed as text or JSON.
type report struct {
	Sample     int     `json:"sample,omitempty"`
	Seed       int64   `json:"seed,omitempty"`
	Persons    int     `json:"persons"`
	Objects    int     `json:"objects"`
	MaxBenefit float64 `json:"max_benefit"`
	Assignment []int   `json:"assignment"`
	Total      float64 `json:"total"`
	Bids       int     `json:"bids"`
	RuntimeMS  float64 `json:"runtime_ms"`
}

// options turns the flags into solver options.
func (r *runner) options() []auction.Option {
	return []auction.Option{
		auction.WithSlack(r.cfg.slack),
		auction.WithSlackBenefit(r.cfg.slackBenefit),
		auction.WithMaxIterations(r.cfg.maxIterations),
		auction.WithLogger(r.logger),
	}
}

// solve runs inst on the m×n problem already in its benefit buffer and
// fills the result part of rep.
func (r *runner) solve(inst *auction.Instance, m, n int, maxBenefit float64, rep *report) error {
	start := time.Now()
	if err := inst.Solve(m, n, maxBenefit); err != nil {
		return err
	}
	rep.RuntimeMS = float64(time.Since(start).Microseconds()) / 1000

	var err error
	if rep.Assignment, err = inst.Assignment(nil); err != nil {
		return err
	}
	if rep.Total, err = inst.TotalBenefit(); err != nil {
		return err
	}
	rep.Persons, rep.Objects, rep.MaxBenefit = m, n, maxBenefit
	rep.Bids = inst.Stats().Bids()

	return nil
}

// printf writes to the command output unless JSON output is selected.
func (r *runner) printf(format string, args ...interface{}) {
	if !r.cfg.jsonOut {
		fmt.Fprintf(r.out, format, args...)
	}
}

// printVerbose is printf restricted to --verbose.
func (r *runner) printVerbose(format string, args ...interface{}) {
	if r.cfg.verbose {
		r.printf(format, args...)
	}
}

// printAssignment prints "person -> object" lines, "null" for unassigned,
// through printFn.
func printAssignment(printFn func(string, ...interface{}), rep *report) {
	printFn("Assignment results:\n")
	for a, o := range rep.Assignment {
		if o == auction.Unassigned {
			printFn("%d -> null\n", a)
		} else {
			printFn("%d -> %d\n", a, o)
		}
	}
	printFn("\n")
}

// printJSON outputs data as JSON
func (r *runner) printJSON(v interface{}) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}
