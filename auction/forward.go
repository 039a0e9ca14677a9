// SPDX-License-Identifier: MIT

package auction

import "math"

// forward runs Gauss–Seidel forward bids: one unassigned agent at a time
// raises the price of its best resource.
//
// Each bid, for the agent a at position unassigned-1:
//  1. scan a's null resource and row, keeping the best and second-best value
//     (benefit − price) with strict comparisons, so the first resource seen
//     wins a tie;
//  2. set a's profit to second − ε and the bid price to benefit − profit;
//  3. if the price reaches lambda, a takes the resource. Taking it from
//     another agent keeps the unassigned count and stays in this loop; taking
//     an unassigned resource returns, handing over to the reverse phase;
//  4. otherwise the price is raised to lambda, the resource joins the
//     equal-lambda zone and the same agent bids again.
//
// Complexity: O(n) per bid.
func (inst *Instance) forward() error {
	var (
		p     = &inst.part
		m, n  = inst.m, inst.n
		slack = inst.opts.Slack
		value = inst.value
	)
	for {
		if err := inst.tick(); err != nil {
			return err
		}
		inst.stats.ForwardBids++

		a := p.at(p.unassigned - 1)

		// The null resource is the initial candidate.
		o := inst.nullOf(a)
		benefit := inst.opts.SlackBenefit
		best := benefit - value[o]
		second := math.Inf(-1)

		row := inst.benefits[a*n : a*n+n]
		var (
			r    int
			b, v float64
		)
		for r, b = range row {
			v = b - value[m+r]
			if v > second {
				if v > best {
					o = m + r
					benefit = b
					second = best
					best = v
				} else {
					second = v
				}
			}
		}
		so := p.positionOf(o)

		profit := second - slack
		value[a] = profit
		price := benefit - profit

		if price >= inst.lambda {
			value[o] = price
			if so >= p.above {
				// o changes hands; its previous owner takes a's unassigned slot.
				prev := inst.match[o]
				p.swap(a, p.unassigned-1, prev, p.positionOf(prev))
				inst.pair(a, o)

				continue
			}
			p.unassigned--
			p.promote(o, so)
			inst.pair(a, o)

			return nil
		}

		// The bid could not clear the threshold: o was below lambda (every
		// assigned resource is at or above it) and now sits exactly on it.
		value[o] = inst.lambda
		p.below--
		p.move(o, so, p.below)
	}
}
