// SPDX-License-Identifier: MIT

// Package knapsack selects the subset of food items with the greatest total
// calories whose total weight fits within a capacity (0/1 knapsack).
//
// What is in the box?
//
//	Two interchangeable solvers share one contract:
//	  • Exhaustive - enumerates all 2ⁿ subsets by bitmask. Exact for real
//	    weights, practical only for small catalogs (n ≲ 24).
//	  • Dynamic    - fills an (n+1)×(W+1) table over integer capacities and
//	    walks it back to recover one optimal subset.
//
//	Solve dispatches between them according to Options.Algo.
//
// Data model:
//
//	Item     - immutable {Name, Weight, Calories}; built with NewItem.
//	Catalog  - ordered arena of Items; insertion order drives tie-breaking.
//	Solution - indices into the Catalog plus aggregate Weight and Calories.
//
// Usage:
//
//	c := knapsack.NewCatalog()
//	_, _ = c.Add("oatmeal", 2, 300)
//	_, _ = c.Add("peanut butter", 3, 550)
//
//	sol, err := knapsack.Solve(c, 5, knapsack.DefaultOptions())
//	if err != nil {
//	    // ErrInvalidCapacity, ErrCatalogTooLarge, ...
//	}
//	for _, it := range sol.Items(c) {
//	    fmt.Println(it.Name)
//	}
//
// Precision:
//
//	Dynamic indexes its table by integer weights. With RoundTruncate
//	(the default) fractional weights are truncated toward zero, so a
//	solution may carry slightly more real weight than the capacity.
//	RoundCeil rounds up instead and never overshoots.
//
// Complexity:
//
//   - Exhaustive: O(n·2ⁿ) time, O(n) memory.
//   - Dynamic:    O(n·W) time and memory.
//
// The package does no I/O and never logs; loading and printing live in
// fooddb and report.
package knapsack
