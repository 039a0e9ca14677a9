// SPDX-License-Identifier: MIT

// Package batch solves many independent assignment problems in parallel.
//
// A Pool owns a fixed set of auction.Instance values, one per worker, all
// built with the same capacity and options. SolveAll fans problems out with
// an errgroup bounded by the worker count and returns results in input
// order. The first failing problem cancels the rest.
//
// Cancellation is checked between problems; a single solve is not
// interruptible, so bound long solves with auction.WithMaxIterations.
package batch
