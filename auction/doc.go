// SPDX-License-Identifier: MIT

// Package auction solves the rectangular maximum-benefit assignment problem
// with a forward/reverse auction.
//
// Given m agents, n ≥ m resources and an m×n benefit matrix, Solve assigns
// every agent to a distinct resource, or leaves it unassigned for a fixed
// slack benefit, maximizing total benefit up to m·ε, where ε is the
// configurable slack tolerance.
//
// The solver alternates two Gauss–Seidel phases over a unified index space
// of agents, resources, and one artificial null resource per agent:
//
//   - forward: an unassigned agent bids for its best resource;
//   - reverse: an unassigned resource priced above the threshold lambda
//     lowers its price to attract its best agent.
//
// A five-zone permutation with an inverse index tracks which agents and
// resources are assigned and where every unassigned resource's price sits
// relative to lambda; each transition is an O(1) swap.
//
// Usage:
//
//	inst, err := auction.New(maxAgents, maxResources, auction.WithSlack(1e-4))
//	...
//	b := inst.Benefits()
//	b[a*n+r] = benefit // for every a < m, r < n
//	if err := inst.Solve(m, n, maxBenefit); err != nil { ... }
//	r, _ := inst.MatchOf(a) // resource index or auction.Unassigned
//
// An Instance allocates all buffers once and is reused across solves of any
// size up to its capacity. It is not safe for concurrent use; see package
// batch for solving many problems in parallel.
//
// Complexity: O(n) per forward bid and O(m) per reverse bid. The number of
// bids grows with the benefit range divided by ε, so tiny ε values on data
// with many ties can take very long; WithMaxIterations bounds a solve.
package auction
