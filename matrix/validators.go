// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the canonical checks the solvers run before touching a matrix.
//   - Return sentinels wrapped with the validator tag so call sites can match
//     them with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//   - *Dense inputs are scanned over the flat slice; other implementations go
//     through At.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateFinite ensures every entry is finite (no NaN, no ±Inf).
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	var (
		i, j int
		v    float64
		err  error
	)
	if d, ok := m.(*Dense); ok {
		for i, v = range d.data { // fast path over the flat slice
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFinite",
					fmt.Errorf("entry (%d,%d)=%v: %w", i/d.c, i%d.c, v, ErrNaNInf))
			}
		}

		return nil
	}
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFinite",
					fmt.Errorf("entry (%d,%d)=%v: %w", i, j, v, ErrNaNInf))
			}
		}
	}

	return nil
}

// MaxEntry returns the largest entry of a finite, non-empty matrix.
// It combines ValidateFinite with the maximum scan so callers feeding the
// auction solver need only one pass.
// Complexity: O(r*c).
func MaxEntry(m Matrix) (float64, error) {
	if err := ValidateFinite(m); err != nil {
		return 0, err
	}
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return 0, validatorErrorf("MaxEntry", ErrInvalidDimensions)
	}
	var (
		best = math.Inf(-1)
		i, j int
		v    float64
		err  error
	)
	if d, ok := m.(*Dense); ok {
		for _, v = range d.data {
			if v > best {
				best = v
			}
		}

		return best, nil
	}
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, validatorErrorf("MaxEntry", err)
			}
			if v > best {
				best = v
			}
		}
	}

	return best, nil
}
