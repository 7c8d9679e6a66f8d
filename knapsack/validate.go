// SPDX-License-Identifier: MIT

// Package knapsack - validation helpers shared by the solvers.
//
// All helpers are side-effect free and return sentinels from types.go,
// wrapped with the offending value where that helps the caller.
package knapsack

import (
	"fmt"
	"math"
)

// validateOptions checks ranges that do not depend on the input.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.ExhaustiveLimit < 0 || opts.ExhaustiveLimit > MaxExhaustiveItems {
		return fmt.Errorf("%w: ExhaustiveLimit %d outside [0, %d]",
			ErrInvalidOptions, opts.ExhaustiveLimit, MaxExhaustiveItems)
	}
	if opts.MaxTableCells <= 0 {
		return fmt.Errorf("%w: MaxTableCells %d must be positive", ErrInvalidOptions, opts.MaxTableCells)
	}
	switch opts.Rounding {
	case RoundTruncate, RoundCeil:
	default:
		return fmt.Errorf("%w: %v", ErrInvalidOptions, opts.Rounding)
	}

	return nil
}

// validateCapacity accepts finite, non-negative capacities.
func validateCapacity(capacity float64) error {
	if math.IsNaN(capacity) || math.IsInf(capacity, 0) || capacity < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidCapacity, capacity)
	}

	return nil
}

// integralCapacity additionally requires an integer value that fits an int.
// It returns the capacity as a table bound.
func integralCapacity(capacity float64) (int, error) {
	if err := validateCapacity(capacity); err != nil {
		return 0, err
	}
	if capacity != math.Trunc(capacity) {
		return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalidCapacity, capacity)
	}
	if capacity > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %v exceeds %d", ErrInvalidCapacity, capacity, math.MaxInt32)
	}

	return int(capacity), nil
}

// tableFits reports whether an (n+1)×(w+1) table stays within maxCells,
// without overflowing the multiplication.
func tableFits(n, w, maxCells int) bool {
	rows, cols := n+1, w+1

	return cols <= maxCells/rows
}
