// SPDX-License-Identifier: MIT

package auction

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

const (
	// DefaultSlack is the complementary-slackness tolerance ε. Every bid
	// raises a price by at least ε, and the returned assignment is within
	// m·ε of the optimum. Smaller values tighten that bound at the cost of
	// more bids; on data with many ties the bid count grows roughly with
	// (benefit range)/ε.
	DefaultSlack = 1e-3

	// DefaultSlackBenefit is the benefit of leaving an agent unassigned.
	DefaultSlackBenefit = -1e-10
)

// Options configures an Instance.
//
//   - Slack: ε, the complementary-slackness tolerance (> 0, finite).
//   - SlackBenefit: benefit of an agent's null resource (finite; must not
//     exceed the maxBenefit passed to Solve).
//   - MaxIterations: cap on the number of bids per Solve; 0 means unlimited.
//   - Logger: receives Debug-level solve summaries; nil means zap.NewNop().
type Options struct {
	Slack         float64
	SlackBenefit  float64
	MaxIterations int
	Logger        *zap.Logger
}

// Option represents a functional option for configuring an Instance.
type Option func(*Options)

// DefaultOptions returns the Options used when New is called without
// overrides.
//
// Defaults:
//   - Slack:         DefaultSlack
//   - SlackBenefit:  DefaultSlackBenefit
//   - MaxIterations: 0 (unlimited)
//   - Logger:        zap.NewNop()
func DefaultOptions() Options {
	return Options{
		Slack:         DefaultSlack,
		SlackBenefit:  DefaultSlackBenefit,
		MaxIterations: 0,
		Logger:        zap.NewNop(),
	}
}

// WithSlack sets the complementary-slackness tolerance ε.
// Non-positive or non-finite values make New return ErrInvalidOption.
func WithSlack(eps float64) Option {
	return func(o *Options) {
		o.Slack = eps
	}
}

// WithSlackBenefit sets the benefit of leaving an agent unassigned.
func WithSlackBenefit(v float64) Option {
	return func(o *Options) {
		o.SlackBenefit = v
	}
}

// WithMaxIterations caps the number of bids per Solve (0 = unlimited).
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithLogger routes solver diagnostics to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// validate checks option values; it never mutates o.
func (o Options) validate() error {
	if err := validateSlack(o.Slack); err != nil {
		return err
	}
	if err := validateSlackBenefit(o.SlackBenefit); err != nil {
		return err
	}
	if o.MaxIterations < 0 {
		return fmt.Errorf("MaxIterations=%d: %w", o.MaxIterations, ErrInvalidOption)
	}

	return nil
}

func validateSlack(eps float64) error {
	if !(eps > 0) || math.IsInf(eps, 0) {
		return fmt.Errorf("slack=%v: %w", eps, ErrInvalidOption)
	}

	return nil
}

func validateSlackBenefit(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("slack benefit=%v: %w", v, ErrInvalidOption)
	}

	return nil
}
