// SPDX-License-Identifier: MIT
// Package auction: sentinel error set.
//
// Every message is prefixed with "auction: ". Call sites add context with
// fmt.Errorf("...: %w", ErrX); callers match with errors.Is.
//
// Classes:
//   - configuration (ErrInvalidCapacity, ErrInvalidProblemSize, ErrInvalidOption)
//     and precondition (ErrInvalidMaxBenefit, ErrNonFiniteBenefit, ErrNilMatrix)
//     errors are returned before any solver state is touched;
//   - ErrIterationLimit leaves the instance unsolved;
//   - ErrInconsistentState is a programming error and is only produced by the
//     structural checker used in tests.

package auction

import "errors"

var (
	// ErrInvalidCapacity is returned by New when maxAgents <= 0 or
	// maxResources < maxAgents.
	ErrInvalidCapacity = errors.New("auction: invalid capacity (need 0 < maxAgents <= maxResources)")

	// ErrInvalidProblemSize is returned by Solve when m == 0, n < m, or the
	// requested size exceeds the capacity fixed at construction.
	ErrInvalidProblemSize = errors.New("auction: invalid problem size")

	// ErrInvalidMaxBenefit is returned when maxBenefit is below the slack
	// benefit, is not finite, or is smaller than an entry of the benefit matrix.
	ErrInvalidMaxBenefit = errors.New("auction: invalid max benefit")

	// ErrNonFiniteBenefit is returned when the populated benefit submatrix
	// holds NaN or ±Inf.
	ErrNonFiniteBenefit = errors.New("auction: benefit is NaN or Inf")

	// ErrInvalidOption is returned for a non-positive or non-finite slack, a
	// non-finite slack benefit, or a negative iteration limit.
	ErrInvalidOption = errors.New("auction: invalid option")

	// ErrIterationLimit is returned when a solve exceeds Options.MaxIterations.
	ErrIterationLimit = errors.New("auction: iteration limit exceeded")

	// ErrNotSolved is returned by result accessors before a successful Solve.
	ErrNotSolved = errors.New("auction: no solved problem")

	// ErrAgentOutOfRange is returned for an agent index outside [0, m).
	ErrAgentOutOfRange = errors.New("auction: agent index out of range")

	// ErrResourceOutOfRange is returned for a resource index outside [0, n).
	ErrResourceOutOfRange = errors.New("auction: resource index out of range")

	// ErrNilMatrix is returned by Load when the matrix is nil.
	ErrNilMatrix = errors.New("auction: nil benefit matrix")

	// ErrNotOptimal is returned by VerifyOptimality when a dual condition fails.
	ErrNotOptimal = errors.New("auction: solution violates complementary slackness")

	// ErrInconsistentState reports a broken partition invariant.
	ErrInconsistentState = errors.New("auction: inconsistent solver state")
)
