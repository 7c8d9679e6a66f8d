// SPDX-License-Identifier: MIT

package knapsack

import (
	"fmt"
	"math/bits"
)

// Exhaustive returns the maximum-calorie subset of c whose total weight
// does not exceed capacity, by enumerating every subset.
//
// Algorithm:
//  1. For mask = 0 … 2ⁿ−1, bit j of mask selects item j.
//  2. Sum weight and calories of the selected items (in index order).
//  3. Discard the subset if its weight exceeds capacity.
//  4. Keep it if its calories are strictly greater than the best so far.
//     The first subset reaching a value wins ties, so results depend on
//     catalog insertion order and nothing else.
//
// Contract:
//   - c must be non-nil (ErrNilCatalog).
//   - capacity must be finite and ≥ 0 (ErrInvalidCapacity).
//   - c.Len() ≤ opts.ExhaustiveLimit (ErrCatalogTooLarge), checked before
//     any enumeration starts.
//   - opts.Algo is ignored.
//
// The returned Solution lists indices in ascending order. An empty catalog,
// or one where no item fits, yields an empty Solution.
//
// Complexity: O(n·2ⁿ) time, O(n) extra memory.
func Exhaustive(c *Catalog, capacity float64, opts Options) (Solution, error) {
	if c == nil {
		return Solution{}, ErrNilCatalog
	}
	if err := validateOptions(opts); err != nil {
		return Solution{}, err
	}
	if err := validateCapacity(capacity); err != nil {
		return Solution{}, err
	}

	n := c.Len()
	if n > opts.ExhaustiveLimit {
		return Solution{}, fmt.Errorf("%w: %d items, limit %d", ErrCatalogTooLarge, n, opts.ExhaustiveLimit)
	}

	var (
		total    = uint64(1) << uint(n) // number of subsets
		mask     uint64                 // current subset
		bestMask uint64                 // best subset so far
		bestW    float64                // its weight
		bestV    float64                // its calories
		found    bool                   // whether bestMask is set
		w, v     float64
		j        int
	)
	for mask = 0; mask < total; mask++ {
		w, v = 0, 0
		for j = 0; j < n; j++ {
			if (mask>>uint(j))&1 == 1 {
				w += c.items[j].Weight
				v += c.items[j].Calories
			}
		}
		if w > capacity {
			continue
		}
		if !found || v > bestV {
			bestMask, bestW, bestV, found = mask, w, v, true
		}
	}

	indices := make([]int, 0, bits.OnesCount64(bestMask))
	for j = 0; j < n; j++ {
		if (bestMask>>uint(j))&1 == 1 {
			indices = append(indices, j)
		}
	}

	return Solution{Indices: indices, Weight: bestW, Calories: bestV}, nil
}
