// SPDX-License-Identifier: MIT

package knapsack

import (
	"fmt"
	"math"
)

// Dynamic returns a maximum-calorie subset of c whose integer-rounded
// weight does not exceed capacity, using the classic 0/1 knapsack table.
//
// Algorithm:
//  1. W = capacity (must be integral); wᵢ = round(weight of item i) per
//     opts.Rounding; vᵢ = calories of item i.
//  2. T[0][w] = 0 for every w.
//  3. For i = 1..n, w = 0..W:
//     T[i][w] = T[i−1][w]                              if wᵢ > w
//     T[i][w] = max(T[i−1][w], vᵢ + T[i−1][w−wᵢ])       otherwise
//  4. Walk back from (n, W): when T[i][w] != T[i−1][w], item i was taken,
//     so record it and subtract wᵢ from w. Decrement i either way.
//
// The back-walk yields one optimal subset; when several exist, the one it
// finds is fully determined by the table. Indices are recorded in walk
// order, i.e. descending.
//
// Contract:
//   - c must be non-nil (ErrNilCatalog).
//   - capacity must be a finite, non-negative integer (ErrInvalidCapacity).
//   - (n+1)·(W+1) ≤ opts.MaxTableCells (ErrTableTooLarge), checked before
//     allocating.
//   - opts.Algo is ignored.
//
// An item whose real weight exceeds capacity is never selected, even when
// truncation would round it down to capacity.
//
// Solution.Weight and Solution.Calories are summed from the real item
// values, not from the table.
//
// Complexity: O(n·W) time and memory.
func Dynamic(c *Catalog, capacity float64, opts Options) (Solution, error) {
	if c == nil {
		return Solution{}, ErrNilCatalog
	}
	if err := validateOptions(opts); err != nil {
		return Solution{}, err
	}
	W, err := integralCapacity(capacity)
	if err != nil {
		return Solution{}, err
	}

	// Truncated fractional weights would index column 0; a zero capacity
	// still carries nothing.
	if W == 0 {
		return Solution{Indices: []int{}}, nil
	}

	n := c.Len()
	if !tableFits(n, W, opts.MaxTableCells) {
		return Solution{}, fmt.Errorf("%w: %d×%d cells, limit %d", ErrTableTooLarge, n+1, W+1, opts.MaxTableCells)
	}

	// --- 1. Integer weights ---
	weights := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		weights[i] = tableWeight(c.items[i].Weight, W, opts.Rounding)
	}

	// --- 2. Fill the table; row 0 stays zero ---
	T := make([][]float64, n+1)
	for i = range T {
		T[i] = make([]float64, W+1)
	}
	var (
		w    int
		wi   int
		vi   float64
		cand float64
		prev []float64
		row  []float64
	)
	for i = 1; i <= n; i++ {
		wi = weights[i-1]
		vi = c.items[i-1].Calories
		prev, row = T[i-1], T[i]
		for w = 0; w <= W; w++ {
			row[w] = prev[w]
			if wi > w {
				continue
			}
			if cand = vi + prev[w-wi]; cand > row[w] {
				row[w] = cand
			}
		}
	}

	// --- 3. Back-walk ---
	indices := make([]int, 0, n)
	w = W
	for i = n; i > 0; i-- {
		if T[i][w] != T[i-1][w] {
			indices = append(indices, i-1)
			w -= weights[i-1]
		}
	}

	weight, calories, err := c.Totals(indices)
	if err != nil {
		return Solution{}, err
	}

	return Solution{Indices: indices, Weight: weight, Calories: calories}, nil
}

// tableWeight converts a real weight to a table index. Items whose real
// weight exceeds capacity W map to W+1 so they are never selected, however
// the rounding policy would shrink them, and never overflow an int.
func tableWeight(weight float64, W int, r Rounding) int {
	if weight > float64(W) {
		return W + 1
	}

	var x float64
	switch r {
	case RoundCeil:
		x = math.Ceil(weight)
	default:
		x = math.Trunc(weight)
	}
	if x > float64(W) {
		return W + 1
	}

	return int(x)
}
