package main

import (
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/assignment/auction"
)

// runRandom solves cfg.samples random persons×objects problems on one
// reused Instance. Benefits are uniform in [0, 100).
func (r *runner) runRandom() error {
	inst, err := auction.New(r.cfg.persons, r.cfg.objects, r.options()...)
	if err != nil {
		return err
	}
	seed := r.cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m, n := r.cfg.persons, r.cfg.objects
	reports := make([]report, 0, r.cfg.samples)
	for sample := 1; sample <= r.cfg.samples; sample++ {
		rep := report{Sample: sample, Seed: seed}
		r.printf("Sample #%d\n", sample)
		r.printf("Random seed = %d\n", seed)
		rng := rand.New(rand.NewSource(seed))
		seed++

		r.printVerbose("Generating random arc benefits:\n")
		benefits := inst.Benefits()
		maxBenefit := math.Inf(-1)
		for a := 0; a < m; a++ {
			for o := 0; o < n; o++ {
				b := rng.Float64() * 100
				benefits[a*n+o] = b
				maxBenefit = math.Max(maxBenefit, b)
				r.printVerbose("\t%d -> %d = %f\n", a, o, b)
			}
		}
		maxBenefit = math.Max(maxBenefit, r.cfg.slackBenefit)
		r.printVerbose("Max arc = %f\n\n", maxBenefit)

		r.printf("Starting solve...\n")
		if err = r.solve(inst, m, n, maxBenefit, &rep); err != nil {
			return err
		}
		r.printf("Finished: %.3fms (%d bids)\n\n", rep.RuntimeMS, rep.Bids)
		printAssignment(r.printVerbose, &rep)
		reports = append(reports, rep)
	}

	if r.cfg.jsonOut {
		return r.printJSON(reports)
	}

	return nil
}
