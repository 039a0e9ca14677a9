// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/assignment/auction"
	"github.com/katalvlaran/assignment/matrix"
)

// Result is the outcome of one problem.
type Result struct {
	Assignment []int // resource per agent, or auction.Unassigned
	Total      float64
	Stats      auction.Stats
}

// Pool hands out pre-built Instances to concurrent solves.
// A Pool is safe for concurrent use.
type Pool struct {
	instances chan *auction.Instance
	workers   int
	log       *zap.Logger
}

// NewPool builds workers Instances of capacity maxAgents × maxResources,
// each configured with opts. The logger passed through auction.WithLogger
// is shared by the pool and its instances.
//
// Errors: ErrInvalidWorkers, or whatever auction.New returns.
func NewPool(workers, maxAgents, maxResources int, opts ...auction.Option) (*Pool, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("NewPool(%d): %w", workers, ErrInvalidWorkers)
	}
	cfg := auction.DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	p := &Pool{
		instances: make(chan *auction.Instance, workers),
		workers:   workers,
		log:       log,
	}
	for i := 0; i < workers; i++ {
		inst, err := auction.New(maxAgents, maxResources, opts...)
		if err != nil {
			return nil, fmt.Errorf("NewPool: instance %d: %w", i, err)
		}
		p.instances <- inst
	}

	return p, nil
}

// Workers returns the number of Instances in the pool.
func (p *Pool) Workers() int { return p.workers }

// Solve solves a single problem on the next free Instance.
// It blocks until an Instance is available or ctx is done.
func (p *Pool) Solve(ctx context.Context, mat matrix.Matrix) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	var inst *auction.Instance
	select {
	case inst = <-p.instances:
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
	defer func() { p.instances <- inst }()

	if err := inst.SolveMatrix(mat); err != nil {
		return Result{}, err
	}

	return collect(inst)
}

// SolveAll solves every problem and returns the results in input order.
// At most Workers problems run at once. The first error (a solve failure or
// ctx being done) stops launching new problems and is returned, wrapped with
// the index of the failing problem.
func (p *Pool) SolveAll(ctx context.Context, problems []matrix.Matrix) ([]Result, error) {
	start := time.Now()
	results := make([]Result, len(problems))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, mat := range problems {
		i, mat := i, mat
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			res, err := p.Solve(gctx, mat)
			if err != nil {
				return fmt.Errorf("problem %d: %w", i, err)
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if ce := p.log.Check(zap.DebugLevel, "batch solved"); ce != nil {
		ce.Write(
			zap.Int("problems", len(problems)),
			zap.Int("workers", p.workers),
			zap.Duration("elapsed", time.Since(start)))
	}

	return results, nil
}

// collect copies the result out of inst before it returns to the pool.
func collect(inst *auction.Instance) (Result, error) {
	assignment, err := inst.Assignment(make([]int, 0, inst.Agents()))
	if err != nil {
		return Result{}, err
	}
	total, err := inst.TotalBenefit()
	if err != nil {
		return Result{}, err
	}

	return Result{Assignment: assignment, Total: total, Stats: inst.Stats()}, nil
}
