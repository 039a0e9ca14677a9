// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major float64 matrices used to hand
// benefit data to the assignment solvers.
//
// The package provides:
//
//   - Matrix: the minimal read/write surface (Rows, Cols, At, Set, Clone)
//     accepted by auction.Instance.Load and the batch pool.
//   - Dense: a concrete implementation backed by one flat slice, so a full
//     row scan touches contiguous memory.
//   - Validators (ValidateNotNil, ValidateFinite, MaxEntry) that fail fast
//     with the sentinels from errors.go.
//
// Indexers never panic on user input; they return ErrOutOfRange.
package matrix
