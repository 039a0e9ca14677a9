package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/assignment/auction"
	"github.com/katalvlaran/assignment/matrix"
)

// problemFile is the YAML layout accepted by --input:
//
//	slack_benefit: -1e-10   # optional, overrides the default of -e
//	slack: 0.001            # optional, overrides the default of --slack
//	benefits:               # one row per person
//	  - [3, 1, 2]
//	  - [4, 0, 5]
type problemFile struct {
	SlackBenefit *float64    `yaml:"slack_benefit"`
	Slack        *float64    `yaml:"slack"`
	Benefits     [][]float64 `yaml:"benefits"`
}

// loadProblem parses path into a benefit matrix. Values from the file fill
// in the solver settings whose flags were not given explicitly.
func (r *runner) loadProblem(cmd *cobra.Command, path string) (*matrix.Dense, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read problem: %w", err)
	}
	var pf problemFile
	if err = yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	d, err := matrix.NewDenseFromRows(pf.Benefits)
	if err != nil {
		return nil, fmt.Errorf("%s: benefits: %w", path, err)
	}
	if pf.SlackBenefit != nil && !cmd.Flags().Changed("slack-benefit") {
		r.cfg.slackBenefit = *pf.SlackBenefit
	}
	if pf.Slack != nil && !cmd.Flags().Changed("slack") {
		r.cfg.slack = *pf.Slack
	}

	return d, nil
}

// runInput solves the single problem read from --input.
func (r *runner) runInput(cmd *cobra.Command) error {
	d, err := r.loadProblem(cmd, r.cfg.input)
	if err != nil {
		return err
	}
	inst, err := auction.New(d.Rows(), d.Cols(), r.options()...)
	if err != nil {
		return err
	}
	maxBenefit, err := inst.Load(d)
	if err != nil {
		return err
	}
	if maxBenefit < r.cfg.slackBenefit {
		maxBenefit = r.cfg.slackBenefit
	}
	r.printVerbose("Loaded %d×%d problem from %s, max arc = %f\n\n", d.Rows(), d.Cols(), r.cfg.input, maxBenefit)

	var rep report
	if err = r.solve(inst, d.Rows(), d.Cols(), maxBenefit, &rep); err != nil {
		return err
	}
	if r.cfg.jsonOut {
		return r.printJSON(rep)
	}
	r.printf("Finished: %.3fms (%d bids)\n", rep.RuntimeMS, rep.Bids)
	r.printf("Total benefit = %g\n\n", rep.Total)
	printAssignment(r.printf, &rep)

	return nil
}
