// SPDX-License-Identifier: MIT
// Package auction - post-hoc verification.
//
// Two independent, read-only checks:
//   - checkStructure: the partition invariants. It is a full O(2m+n) scan and
//     is never called by the solver itself; tests reach it through
//     export_test.go, including between bids by stopping a solve with
//     WithMaxIterations.
//   - VerifyOptimality: ε-complementary slackness of the final duals.

package auction

import (
	"fmt"
	"math"
)

// structuralf wraps ErrInconsistentState with a description.
func structuralf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInconsistentState)
}

// checkStructure verifies, for the current (possibly mid-solve) state:
//   - boundary ordering unassigned <= m <= below <= equal <= above <= size;
//   - order[pos[x]] == x for every index;
//   - as many assigned agents as assigned resources;
//   - agents only in zones 1–2, resources only in zones 3–6;
//   - the price relation of each resource zone to lambda;
//   - match symmetry for every assigned agent and resource.
func (inst *Instance) checkStructure() error {
	p := &inst.part
	m, n := inst.m, inst.n
	size := 2*m + n
	if p.size != size || len(p.order) != size || len(p.pos) != size {
		return structuralf("size %d, want %d", p.size, size)
	}
	if p.unassigned < 0 || p.unassigned > m || p.below < m ||
		p.equal < p.below || p.above < p.equal || p.above > size {
		return structuralf("boundaries unassigned=%d m=%d below=%d equal=%d above=%d size=%d",
			p.unassigned, m, p.below, p.equal, p.above, size)
	}

	var x, s int
	for x = 0; x < size; x++ {
		s = p.pos[x]
		if s < 0 || s >= size || p.order[s] != x {
			return structuralf("pos[%d]=%d is not inverted by order", x, s)
		}
	}
	if m-p.unassigned != size-p.above {
		return structuralf("%d assigned agents but %d assigned resources", m-p.unassigned, size-p.above)
	}

	lambda := inst.lambda
	var (
		v       float64
		partner int
	)
	for s = 0; s < size; s++ {
		x = p.order[s]
		v = inst.value[x]
		switch {
		case s < m:
			if x >= m {
				return structuralf("resource %d in agent zone at %d", x, s)
			}
			if s < p.unassigned {
				continue
			}
			partner = inst.match[x]
			if partner < m || partner >= size || p.pos[partner] < p.above || inst.match[partner] != x {
				return structuralf("assigned agent %d has broken match %d", x, partner)
			}
		case x < m:
			return structuralf("agent %d in resource zone at %d", x, s)
		case s < p.below:
			if !(v < lambda) {
				return structuralf("resource %d price %g not below lambda %g", x, v, lambda)
			}
		case s < p.equal:
			if v != lambda {
				return structuralf("resource %d price %g not equal to lambda %g", x, v, lambda)
			}
		case s < p.above:
			if !(v > lambda) {
				return structuralf("resource %d price %g not above lambda %g", x, v, lambda)
			}
		default:
			if !(v >= lambda) {
				return structuralf("assigned resource %d price %g below lambda %g", x, v, lambda)
			}
			partner = inst.match[x]
			if partner < 0 || partner >= m || p.pos[partner] < p.unassigned || inst.match[partner] != x {
				return structuralf("assigned resource %d has broken match %d", x, partner)
			}
		}
	}

	return nil
}

// VerifyOptimality checks the final duals of the last solve, with numeric
// tolerance tol >= 0:
//   - profit[a] + price[r] >= benefit(a,r) − ε − tol for every agent a and
//     resource r, including a's own null resource;
//   - |profit[a] + price[match(a)] − benefit(a,match(a))| <= tol;
//   - no unassigned resource is priced above the cheapest assigned one
//     (again up to tol).
//
// Errors: ErrNotSolved, ErrInvalidOption (tol < 0 or NaN), ErrNotOptimal
// wrapped with the first violation found.
// Complexity: O(m·n).
func (inst *Instance) VerifyOptimality(tol float64) error {
	if !inst.solved {
		return ErrNotSolved
	}
	if !(tol >= 0) {
		return fmt.Errorf("tolerance=%v: %w", tol, ErrInvalidOption)
	}
	var (
		m, n   = inst.m, inst.n
		size   = 2*m + n
		slack  = inst.opts.Slack
		sb     = inst.opts.SlackBenefit
		value  = inst.value
		a, r   int
		lhs, b float64
	)
	for a = 0; a < m; a++ {
		for r = 0; r < n; r++ {
			lhs = value[a] + value[m+r]
			b = inst.benefits[a*n+r]
			if lhs < b-slack-tol {
				return fmt.Errorf("agent %d resource %d: profit+price=%g < benefit-slack=%g: %w",
					a, r, lhs, b-slack, ErrNotOptimal)
			}
		}
		lhs = value[a] + value[inst.nullOf(a)]
		if lhs < sb-slack-tol {
			return fmt.Errorf("agent %d null resource: profit+price=%g < slack benefit-slack=%g: %w",
				a, lhs, sb-slack, ErrNotOptimal)
		}

		o := inst.match[a]
		if o >= m+n {
			b = sb
		} else {
			b = inst.benefits[a*n+o-m]
		}
		lhs = value[a] + value[o]
		if math.Abs(lhs-b) > tol {
			return fmt.Errorf("agent %d matched %d: profit+price=%g != benefit=%g: %w",
				a, o, lhs, b, ErrNotOptimal)
		}
	}

	p := &inst.part
	minAssigned := math.Inf(1)
	var s int
	for s = p.above; s < size; s++ {
		minAssigned = math.Min(minAssigned, value[p.order[s]])
	}
	for s = m; s < p.above; s++ {
		if v := value[p.order[s]]; v > minAssigned+tol {
			return fmt.Errorf("unassigned resource %d price %g above cheapest assigned %g: %w",
				p.order[s], v, minAssigned, ErrNotOptimal)
		}
	}

	return nil
}
