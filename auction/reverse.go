// SPDX-License-Identifier: MIT

package auction

import (
	"math"

	"go.uber.org/zap"
)

// reverse runs Gauss–Seidel reverse bids: while some unassigned resource is
// priced strictly above lambda, the one at the top of that zone lowers its
// price to attract the agent that values it most.
//
// A null resource has a single bidder, its owner, and uses −Inf as the
// second-best value, which prices it at lambda on a successful bid.
//
// A successful bid (best − ε >= lambda) prices the resource at
// max(lambda, second − ε) and gives it to the best agent:
//   - if the agent already held a resource, that resource returns to the
//     unassigned zones (equal-lambda when its price is exactly lambda) and the
//     loop continues;
//   - otherwise the agent becomes assigned and, if other agents still wait,
//     control returns to the forward phase.
//
// A failed bid drops the resource below lambda. Once more than n resources
// sit below the threshold, lambda is lowered (lowerThreshold).
//
// Complexity: O(m) per bid, plus O(m+n) per threshold lowering.
func (inst *Instance) reverse() error {
	var (
		p     = &inst.part
		m, n  = inst.m, inst.n
		slack = inst.opts.Slack
		value = inst.value
	)
	for p.equal != p.above {
		if err := inst.tick(); err != nil {
			return err
		}
		inst.stats.ReverseBids++

		so := p.above - 1
		o := p.at(so)

		var (
			a            int
			benefit      float64
			best, second float64
		)
		if o >= m+n {
			a = o - m - n
			benefit = inst.opts.SlackBenefit
			best = benefit - value[a]
			second = math.Inf(-1)
		} else {
			best, second = math.Inf(-1), math.Inf(-1)
			col := o - m
			for i := 0; i < m; i++ {
				b := inst.benefits[i*n+col]
				v := b - value[i]
				if v > second {
					if v > best {
						a = i
						benefit = b
						second = best
						best = v
					} else {
						second = v
					}
				}
			}
		}

		price := best - slack
		if price < inst.lambda {
			value[o] = price
			p.demote(o, so)
			if p.below > m+n {
				inst.lowerThreshold()
			}

			continue
		}

		price = math.Max(inst.lambda, second-slack)
		value[a] = benefit - price
		value[o] = price

		sa := p.positionOf(a)
		if sa < p.unassigned {
			p.assignAgent(a, sa)
			p.above--
			inst.pair(a, o)
			if p.unassigned > 0 {
				return nil
			}

			continue
		}

		// a trades its current resource for o.
		prev := inst.match[a]
		sprev := p.positionOf(prev)
		onLambda := value[prev] == inst.lambda
		if onLambda && so != p.equal {
			// prev must land on the equal-lambda boundary, not at so: o takes
			// prev's slot and prev swaps with the first resource above lambda.
			p.place(o, sprev)
			p.forceMove(prev, so, p.equal)
		} else {
			p.swap(o, so, prev, sprev)
		}
		if onLambda {
			p.equal++
		}
		inst.pair(a, o)
	}

	return nil
}

// lowerThreshold sets lambda to the minimum price found below it, moves the
// resources at that price into the equal-lambda zone, and empties the
// below-lambda zone: everything else it held is now above the new lambda.
//
// Complexity: O(m+n); no allocation (ties go to the preallocated scratch).
func (inst *Instance) lowerThreshold() {
	p := &inst.part
	minPrice := math.Inf(1)
	ties := inst.scratch[:0]

	var (
		s, r int
		v    float64
	)
	for s = p.m; s < p.below; s++ {
		r = p.at(s)
		v = inst.value[r]
		if v < minPrice {
			minPrice = v
			ties = append(ties[:0], r)
		} else if v == minPrice {
			ties = append(ties, r)
		}
	}
	for s, r = range ties {
		p.move(r, p.positionOf(r), p.m+s)
	}
	p.collapseBelow(len(ties))

	from := inst.lambda
	inst.lambda = minPrice
	inst.stats.ThresholdLowerings++
	if ce := inst.log.Check(zap.DebugLevel, "auction threshold lowered"); ce != nil {
		ce.Write(
			zap.Float64("from", from),
			zap.Float64("to", minPrice),
			zap.Int("ties", len(ties)))
	}
}
