// SPDX-License-Identifier: MIT

package auction

import (
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/assignment/matrix"
)

// Unassigned is returned by MatchOf for an agent left on its null resource.
const Unassigned = -1

const (
	// initialPrice is the starting price of every resource, real or null.
	// It lies strictly above initialLambda, so all resources start in the
	// "above threshold" zone.
	initialPrice = 1.0
	// initialLambda is the starting threshold.
	initialLambda = 0.0
)

// Stats summarizes the work done by the last Solve.
type Stats struct {
	ForwardBids        int     // agents that placed a bid
	ReverseBids        int     // resources that placed a bid
	ThresholdLowerings int     // times lambda was lowered
	Lambda             float64 // threshold at termination
}

// Bids returns the total number of bids (forward and reverse).
func (s Stats) Bids() int { return s.ForwardBids + s.ReverseBids }

// Instance owns every buffer the auction needs for problems up to
// maxAgents × maxResources and is reused across Solve calls.
//
// Index space of a solve with m agents and n resources (size 2m+n):
//
//	[0, m)        agents
//	[m, m+n)      resources
//	[m+n, 2m+n)   null resources; agent a owns a+m+n
//
// An Instance is not safe for concurrent use; give each goroutine its own.
type Instance struct {
	maxAgents    int
	maxResources int

	benefits []float64 // row-major, stride n of the current solve
	value    []float64 // profit for agents, price for resources
	match    []int     // partner index, meaningful while assigned
	part     partition
	scratch  []int // minimum-price ties while lowering lambda

	opts Options
	log  *zap.Logger

	m, n   int
	lambda float64
	solved bool
	stats  Stats
}

// New allocates an Instance for problems with at most maxAgents agents and
// maxResources resources.
//
// Errors:
//   - ErrInvalidCapacity if maxAgents <= 0 or maxResources < maxAgents.
//   - ErrInvalidOption if an option value is out of range.
//
// Complexity: O(maxAgents·maxResources) memory, allocated once.
func New(maxAgents, maxResources int, opts ...Option) (*Instance, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if maxAgents <= 0 || maxResources < maxAgents {
		return nil, fmt.Errorf("New(%d, %d): %w", maxAgents, maxResources, ErrInvalidCapacity)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	capacity := 2*maxAgents + maxResources

	return &Instance{
		maxAgents:    maxAgents,
		maxResources: maxResources,
		benefits:     make([]float64, maxAgents*maxResources),
		value:        make([]float64, capacity),
		match:        make([]int, capacity),
		part:         newPartition(capacity),
		scratch:      make([]int, 0, maxAgents+maxResources),
		opts:         cfg,
		log:          cfg.Logger,
	}, nil
}

// MaxAgents returns the agent capacity.
func (inst *Instance) MaxAgents() int { return inst.maxAgents }

// MaxResources returns the resource capacity.
func (inst *Instance) MaxResources() int { return inst.maxResources }

// Agents returns m of the last Solve that passed validation (0 before).
func (inst *Instance) Agents() int { return inst.m }

// Resources returns n of the last Solve that passed validation (0 before).
func (inst *Instance) Resources() int { return inst.n }

// Slack returns the complementary-slackness tolerance ε.
func (inst *Instance) Slack() float64 { return inst.opts.Slack }

// SlackBenefit returns the benefit of leaving an agent unassigned.
func (inst *Instance) SlackBenefit() float64 { return inst.opts.SlackBenefit }

// SetSlack changes ε for subsequent solves and discards the previous result.
func (inst *Instance) SetSlack(eps float64) error {
	if err := validateSlack(eps); err != nil {
		return err
	}
	inst.opts.Slack = eps
	inst.solved = false

	return nil
}

// SetSlackBenefit changes the unassigned benefit for subsequent solves and
// discards the previous result.
func (inst *Instance) SetSlackBenefit(v float64) error {
	if err := validateSlackBenefit(v); err != nil {
		return err
	}
	inst.opts.SlackBenefit = v
	inst.solved = false

	return nil
}

// Benefits exposes the benefit buffer (capacity maxAgents·maxResources).
// Before Solve(m, n, ...) the caller writes the benefit of agent a for
// resource r at index a*n + r, for a < m and r < n. The solver only reads it.
func (inst *Instance) Benefits() []float64 { return inst.benefits }

// Load copies mat (m rows × n columns) into the benefit buffer with stride n
// and returns its largest entry. Once mat passes validation the previous
// result is discarded, as the copy overwrites the benefits it was read from.
//
// Errors: ErrNilMatrix, ErrInvalidProblemSize (shape outside capacity or
// n < m), ErrNonFiniteBenefit.
// Complexity: O(m·n).
func (inst *Instance) Load(mat matrix.Matrix) (float64, error) {
	if err := matrix.ValidateNotNil(mat); err != nil {
		return 0, fmt.Errorf("Load: %w", ErrNilMatrix)
	}
	m, n := mat.Rows(), mat.Cols()
	if err := inst.validateSize(m, n); err != nil {
		return 0, err
	}
	maxBenefit, err := matrix.MaxEntry(mat)
	if err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			return 0, fmt.Errorf("Load: %v: %w", err, ErrNonFiniteBenefit)
		}

		return 0, fmt.Errorf("Load: %w", err)
	}

	// The buffer is about to change under the previous result.
	inst.solved = false

	var (
		a, r int
		row  []float64
		v    float64
	)
	if d, ok := mat.(*matrix.Dense); ok {
		for a = 0; a < m; a++ {
			if row, err = d.Row(a); err != nil {
				return 0, fmt.Errorf("Load: %w", err)
			}
			copy(inst.benefits[a*n:(a+1)*n], row)
		}

		return maxBenefit, nil
	}
	for a = 0; a < m; a++ {
		for r = 0; r < n; r++ {
			if v, err = mat.At(a, r); err != nil {
				return 0, fmt.Errorf("Load: %w", err)
			}
			inst.benefits[a*n+r] = v
		}
	}

	return maxBenefit, nil
}

// SolveMatrix loads mat and solves it. The max benefit handed to Solve is
// the largest entry of mat, raised to the slack benefit when every entry is
// below it.
func (inst *Instance) SolveMatrix(mat matrix.Matrix) error {
	maxBenefit, err := inst.Load(mat)
	if err != nil {
		return err
	}

	return inst.Solve(mat.Rows(), mat.Cols(), math.Max(maxBenefit, inst.opts.SlackBenefit))
}

// Solve computes an assignment of the m agents to distinct resources among
// the first n, using the benefits written through Benefits (or Load).
//
// maxBenefit must be finite, at least the slack benefit, and at least every
// entry of the m×n benefit submatrix; all three are checked before any
// solver state changes.
//
// Errors:
//   - ErrInvalidProblemSize if m <= 0, n < m, or (m, n) exceeds capacity.
//   - ErrInvalidMaxBenefit, ErrNonFiniteBenefit for precondition violations.
//   - ErrIterationLimit if Options.MaxIterations bids were not enough.
//
// On success every agent in [0, m) has a resource or Unassigned, readable via
// MatchOf and Assignment. The assignment is within m·Slack of the optimum.
//
// Complexity: O(m·n) validation plus O(n) or O(m) per bid; the number of
// bids depends on the benefit range divided by Slack.
func (inst *Instance) Solve(m, n int, maxBenefit float64) error {
	if err := inst.validateSize(m, n); err != nil {
		return err
	}
	if err := inst.validateBenefits(m, n, maxBenefit); err != nil {
		return err
	}

	start := time.Now()
	inst.reset(m, n, maxBenefit)
	if err := inst.run(); err != nil {
		inst.solved = false
		if ce := inst.log.Check(zap.DebugLevel, "auction solve aborted"); ce != nil {
			ce.Write(
				zap.Int("agents", m),
				zap.Int("resources", n),
				zap.Int("bids", inst.stats.Bids()),
				zap.Error(err))
		}

		return err
	}
	inst.solved = true
	inst.stats.Lambda = inst.lambda
	if ce := inst.log.Check(zap.DebugLevel, "auction solve finished"); ce != nil {
		ce.Write(
			zap.Int("agents", m),
			zap.Int("resources", n),
			zap.Int("forward_bids", inst.stats.ForwardBids),
			zap.Int("reverse_bids", inst.stats.ReverseBids),
			zap.Int("threshold_lowerings", inst.stats.ThresholdLowerings),
			zap.Float64("lambda", inst.lambda),
			zap.Duration("elapsed", time.Since(start)))
	}

	return nil
}

// validateSize checks 0 < m <= n against the capacity.
func (inst *Instance) validateSize(m, n int) error {
	if m <= 0 || n < m || m > inst.maxAgents || n > inst.maxResources {
		return fmt.Errorf("m=%d n=%d (capacity %d×%d): %w",
			m, n, inst.maxAgents, inst.maxResources, ErrInvalidProblemSize)
	}

	return nil
}

// validateBenefits checks maxBenefit against the slack benefit and the
// populated submatrix.
// Complexity: O(m·n).
func (inst *Instance) validateBenefits(m, n int, maxBenefit float64) error {
	if math.IsNaN(maxBenefit) || math.IsInf(maxBenefit, 0) {
		return fmt.Errorf("maxBenefit=%v: %w", maxBenefit, ErrInvalidMaxBenefit)
	}
	if maxBenefit < inst.opts.SlackBenefit {
		return fmt.Errorf("maxBenefit=%g below slack benefit %g: %w",
			maxBenefit, inst.opts.SlackBenefit, ErrInvalidMaxBenefit)
	}
	var (
		i int
		b float64
	)
	for i, b = range inst.benefits[:m*n] {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return fmt.Errorf("benefit(%d,%d)=%v: %w", i/n, i%n, b, ErrNonFiniteBenefit)
		}
		if b > maxBenefit {
			return fmt.Errorf("benefit(%d,%d)=%g exceeds maxBenefit=%g: %w",
				i/n, i%n, b, maxBenefit, ErrInvalidMaxBenefit)
		}
	}

	return nil
}

// reset re-slices the buffers for an m×n problem and seeds the duals:
// agent profits start at maxBenefit, every price at initialPrice.
func (inst *Instance) reset(m, n int, maxBenefit float64) {
	size := 2*m + n
	inst.m, inst.n = m, n
	inst.value = inst.value[:size]
	inst.match = inst.match[:size]
	var i int
	for i = 0; i < size; i++ {
		if i < m {
			inst.value[i] = maxBenefit
		} else {
			inst.value[i] = initialPrice
		}
		inst.match[i] = i
	}
	inst.part.reset(m, size)
	inst.lambda = initialLambda
	inst.solved = false
	inst.stats = Stats{}
}

// run alternates the forward and reverse phases until every agent holds a
// resource (real or null) and no unassigned resource is priced above lambda.
func (inst *Instance) run() error {
	var err error
	for {
		if err = inst.forward(); err != nil {
			return err
		}
		if err = inst.reverse(); err != nil {
			return err
		}
		if inst.part.unassigned == 0 {
			return nil
		}
	}
}

// tick enforces Options.MaxIterations. It is called at the top of every bid,
// before the bid touches any state, so an abort leaves a consistent partition.
func (inst *Instance) tick() error {
	if inst.opts.MaxIterations > 0 && inst.stats.Bids() >= inst.opts.MaxIterations {
		return fmt.Errorf("after %d bids: %w", inst.stats.Bids(), ErrIterationLimit)
	}

	return nil
}

// pair records a <-> o in the match array.
func (inst *Instance) pair(a, o int) {
	inst.match[a] = o
	inst.match[o] = a
}

// nullOf returns the index of agent a's null resource.
func (inst *Instance) nullOf(a int) int { return a + inst.m + inst.n }

// MatchOf returns the resource in [0, n) assigned to agent, or Unassigned.
//
// Errors: ErrNotSolved, ErrAgentOutOfRange.
func (inst *Instance) MatchOf(agent int) (int, error) {
	if !inst.solved {
		return 0, ErrNotSolved
	}
	if agent < 0 || agent >= inst.m {
		return 0, fmt.Errorf("agent %d (m=%d): %w", agent, inst.m, ErrAgentOutOfRange)
	}
	r := inst.match[agent]
	if r >= inst.m+inst.n {
		return Unassigned, nil
	}

	return r - inst.m, nil
}

// Assignment appends MatchOf(a) for every agent a in [0, m) to dst.
func (inst *Instance) Assignment(dst []int) ([]int, error) {
	if !inst.solved {
		return dst, ErrNotSolved
	}
	var a, r int
	for a = 0; a < inst.m; a++ {
		r = inst.match[a]
		if r >= inst.m+inst.n {
			dst = append(dst, Unassigned)
		} else {
			dst = append(dst, r-inst.m)
		}
	}

	return dst, nil
}

// TotalBenefit returns the objective value of the current assignment:
// the benefit of every matched pair plus SlackBenefit per unassigned agent.
func (inst *Instance) TotalBenefit() (float64, error) {
	if !inst.solved {
		return 0, ErrNotSolved
	}
	var (
		total float64
		a, r  int
	)
	for a = 0; a < inst.m; a++ {
		r = inst.match[a]
		if r >= inst.m+inst.n {
			total += inst.opts.SlackBenefit
		} else {
			total += inst.benefits[a*inst.n+r-inst.m]
		}
	}

	return total, nil
}

// Profit returns the dual value (profit) of agent after a solve.
func (inst *Instance) Profit(agent int) (float64, error) {
	if !inst.solved {
		return 0, ErrNotSolved
	}
	if agent < 0 || agent >= inst.m {
		return 0, fmt.Errorf("agent %d (m=%d): %w", agent, inst.m, ErrAgentOutOfRange)
	}

	return inst.value[agent], nil
}

// Price returns the dual value (price) of resource r in [0, n) after a solve.
func (inst *Instance) Price(resource int) (float64, error) {
	if !inst.solved {
		return 0, ErrNotSolved
	}
	if resource < 0 || resource >= inst.n {
		return 0, fmt.Errorf("resource %d (n=%d): %w", resource, inst.n, ErrResourceOutOfRange)
	}

	return inst.value[inst.m+resource], nil
}

// Lambda returns the price threshold at the end of the last Solve, including
// one aborted by ErrIterationLimit. It does not report ErrNotSolved.
func (inst *Instance) Lambda() float64 { return inst.lambda }

// Stats returns counters of the last Solve, including an aborted one.
func (inst *Instance) Stats() Stats {
	s := inst.stats
	s.Lambda = inst.lambda

	return s
}
