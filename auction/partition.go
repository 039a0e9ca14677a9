// SPDX-License-Identifier: MIT
// Package auction - the five-zone partition over the unified index space.
//
// Layout of positions (zone boundaries are the four counters below):
//
//	[0, unassigned)      unassigned agents
//	[unassigned, m)      assigned agents
//	[m, below)           unassigned resources, price <  lambda
//	[below, equal)       unassigned resources, price == lambda
//	[equal, above)       unassigned resources, price >  lambda
//	[above, size)        assigned resources,   price >= lambda
//
// Order inside a zone carries no meaning. order and pos are mutual inverses
// at every point where the solver reads them: order[pos[x]] == x. The
// primitives below are the only code that writes either slice.

package auction

// partition holds the permutation, its inverse and the zone boundaries.
type partition struct {
	order []int // position -> index
	pos   []int // index -> position

	m          int // number of agents (start of the resource zones)
	size       int // 2m+n
	unassigned int
	below      int
	equal      int
	above      int
}

// newPartition allocates a partition able to hold capacity indices.
func newPartition(capacity int) partition {
	return partition{
		order: make([]int, capacity),
		pos:   make([]int, capacity),
	}
}

// reset re-slices the partition for a problem with m agents and size indices,
// puts every index at its own position, marks all agents unassigned and all
// resources as priced above the threshold.
// Complexity: O(size).
func (p *partition) reset(m, size int) {
	p.order = p.order[:size]
	p.pos = p.pos[:size]
	var i int
	for i = 0; i < size; i++ {
		p.order[i] = i
		p.pos[i] = i
	}
	p.m = m
	p.size = size
	p.unassigned = m
	p.below = m
	p.equal = m
	p.above = size
}

// at returns the index stored at position s.
func (p *partition) at(s int) int { return p.order[s] }

// positionOf returns the position of index i.
func (p *partition) positionOf(i int) int { return p.pos[i] }

// swap exchanges i (at si) and j (at sj). The caller guarantees si != sj;
// nothing is checked here.
func (p *partition) swap(i, si, j, sj int) {
	p.pos[i] = sj
	p.pos[j] = si
	p.order[si] = j
	p.order[sj] = i
}

// move relocates i from si to sj, sending the occupant of sj to si.
// It is a no-op when si == sj.
func (p *partition) move(i, si, sj int) {
	if si != sj {
		p.swap(i, si, p.order[sj], sj)
	}
}

// forceMove is move without the equality guard. It is used when order[si]
// is already stale and pos[i] must be rewritten regardless.
func (p *partition) forceMove(i, si, sj int) {
	p.swap(i, si, p.order[sj], sj)
}

// moveSingle brings the occupant of sj into *si and leaves *si pointing at
// sj, whose slot is now logically free. Chaining calls walks a hole through
// consecutive zone boundaries without ever naming the index being carried.
func (p *partition) moveSingle(si *int, sj int) {
	if *si != sj {
		j := p.order[sj]
		p.order[*si] = j
		p.pos[j] = *si
		*si = sj
	}
}

// shift is moveSingle for callers that do not need the freed slot back.
func (p *partition) shift(si, sj int) {
	if si != sj {
		j := p.order[sj]
		p.order[si] = j
		p.pos[j] = si
	}
}

// place writes index i at position si unconditionally.
func (p *partition) place(i, si int) {
	p.order[si] = i
	p.pos[i] = si
}

// promote turns the unassigned resource o, currently at position so in zone
// 3, 4 or 5, into an assigned one (zone 6). The hole left at so is carried
// up through the zone boundaries it has to cross, one boundary per step:
//
//	zone 3: below--, equal--, above--
//	zone 4: equal--, above--
//	zone 5: above--
func (p *partition) promote(o, so int) {
	if so < p.equal {
		if so < p.below {
			p.below--
			p.moveSingle(&so, p.below)
		}
		p.equal--
		p.moveSingle(&so, p.equal)
	}
	p.above--
	if so == p.above {
		// The hole already sits on the new boundary; only o is left to write.
		p.place(o, so)
	} else {
		p.swap(o, so, p.order[p.above], p.above)
	}
}

// demote moves the unassigned resource o from position so (inside zone 5) to
// the top of zone 3, after its price dropped below the threshold. The first
// resource of zone 5 and the first of zone 4 each slide down one slot to keep
// the zones contiguous.
func (p *partition) demote(o, so int) {
	p.shift(so, p.equal)
	p.shift(p.equal, p.below)
	p.place(o, p.below)
	p.below++
	p.equal++
}

// assignAgent moves agent a from position sa into zone 2.
func (p *partition) assignAgent(a, sa int) {
	p.unassigned--
	p.move(a, sa, p.unassigned)
}

// collapseBelow empties zone 3 after a threshold change: the first ties
// resource positions become zone 4, the rest of the old zone 3 joins zone 5.
func (p *partition) collapseBelow(ties int) {
	p.below = p.m
	p.equal = p.m + ties
}
