// Package exact computes optimal rectangular assignments by exhaustive
// dynamic programming over subsets of used resources. It exists to give the
// auction tests and benchmarks an independent ground truth and is only
// practical for n ≲ 16.
//
// Complexity: O(m·n·2ⁿ) time, O(m·2ⁿ) memory.
package exact

import (
	"errors"
	"math"
)

// MaxResources bounds n so the subset table stays small.
const MaxResources = 16

// ErrTooLarge is returned when n exceeds MaxResources.
var ErrTooLarge = errors.New("exact: too many resources")

// ErrShape is returned for an empty or ragged benefit matrix, or n < m.
var ErrShape = errors.New("exact: invalid benefit matrix shape")

// Optimum returns the maximum total benefit over all assignments in which
// every agent (row) takes a distinct resource (column) or stays unassigned
// for slackBenefit.
func Optimum(benefits [][]float64, slackBenefit float64) (float64, error) {
	m := len(benefits)
	if m == 0 || len(benefits[0]) < m {
		return 0, ErrShape
	}
	n := len(benefits[0])
	for _, row := range benefits {
		if len(row) != n {
			return 0, ErrShape
		}
	}
	if n > MaxResources {
		return 0, ErrTooLarge
	}

	// next[mask] is the optimum for agents [a+1, m) given that the resources in
	// mask are taken; filled from the last agent backwards.
	full := 1 << n
	next := make([]float64, full) // agents [m, m): nothing left to add
	cur := make([]float64, full)
	var (
		a, r, mask int
		v          float64
	)
	for a = m - 1; a >= 0; a-- {
		for mask = 0; mask < full; mask++ {
			v = slackBenefit + next[mask]
			for r = 0; r < n; r++ {
				if mask&(1<<r) != 0 {
					continue
				}
				v = math.Max(v, benefits[a][r]+next[mask|1<<r])
			}
			cur[mask] = v
		}
		cur, next = next, cur
	}

	return next[0], nil
}
