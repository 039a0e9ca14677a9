// Package assignment solves rectangular maximum-benefit assignment problems
// with a forward/reverse auction.
//
// 🚀 What is in the module?
//
//   - auction/: a reusable solver Instance with fixed-capacity
//     buffers, forward and reverse Gauss–Seidel bidding, threshold lowering,
//     and verification of ε-complementary slackness.
//   - matrix/: row-major Dense benefit matrices, validators and the Matrix
//     interface accepted by Instance.Load and Instance.SolveMatrix.
//   - batch/: a Pool of Instances that solves many problems in parallel.
//   - cmd/auctiondemo: command-line driver for random or YAML problems.
//
// Problem: m agents, n ≥ m resources, benefit(a, r) for every pair. Each
// agent takes a distinct resource or stays unassigned for a fixed slack
// benefit, and the total benefit is maximized up to m·ε.
//
// Quick start:
//
//	inst, _ := auction.New(2, 3)
//	copy(inst.Benefits(), []float64{3, 1, 2, 4, 0, 5})
//	_ = inst.Solve(2, 3, 5)
//	r, _ := inst.MatchOf(1) // 2
//
//	go get github.com/katalvlaran/assignment
package assignment
