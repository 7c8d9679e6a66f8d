// SPDX-License-Identifier: MIT

package knapsack

import (
	"fmt"
	"math"
)

// Filter returns a new Catalog with the items of c whose calories lie in
// [minCalories, maxCalories], keeping at most limit items (limit ≤ 0 means
// no limit). Items keep their relative order. The second result maps each
// index of the new Catalog to the index of the same item in c.
//
// Typical uses are dropping zero-calorie items, which can never improve a
// solution, and trimming a catalog to a size Exhaustive can handle.
//
// Errors: ErrNilCatalog; ErrInvalidFilter when a bound is NaN or
// minCalories > maxCalories.
//
// Complexity: O(n).
func Filter(c *Catalog, minCalories, maxCalories float64, limit int) (*Catalog, []int, error) {
	if c == nil {
		return nil, nil, ErrNilCatalog
	}
	if math.IsNaN(minCalories) || math.IsNaN(maxCalories) || minCalories > maxCalories {
		return nil, nil, fmt.Errorf("%w: [%v, %v]", ErrInvalidFilter, minCalories, maxCalories)
	}

	out := &Catalog{}
	var src []int
	for i, it := range c.items {
		if limit > 0 && len(out.items) >= limit {
			break
		}
		if it.Calories < minCalories || it.Calories > maxCalories {
			continue
		}
		out.items = append(out.items, it)
		src = append(src, i)
	}

	return out, src, nil
}

// Remap translates a Solution computed on a filtered Catalog back to the
// indices of the source Catalog, using the mapping returned by Filter.
func Remap(s Solution, src []int) (Solution, error) {
	out := Solution{Indices: make([]int, len(s.Indices)), Weight: s.Weight, Calories: s.Calories}
	for k, i := range s.Indices {
		if i < 0 || i >= len(src) {
			return Solution{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
		}
		out.Indices[k] = src[i]
	}

	return out, nil
}
