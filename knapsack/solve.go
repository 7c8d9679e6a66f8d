// SPDX-License-Identifier: MIT

// Package knapsack - unified dispatcher.
//
// Solve validates the common inputs once and routes to Exhaustive or
// Dynamic according to Options.Algo. AlgoAuto never returns a selection
// heavier than the capacity: it runs the dynamic program on integer
// weights, enumerates exactly when fractional weights fit the exhaustive
// limit, and otherwise runs the dynamic program with ceiling rounding.
package knapsack

import "fmt"

// Solve runs the solver selected by opts.Algo.
//
// Routing:
//   - AlgoExhaustive - Exhaustive(c, capacity, opts).
//   - AlgoDynamic    - Dynamic(c, capacity, opts), honoring opts.Rounding.
//   - AlgoAuto       - the solver Pick reports. When that is Dynamic,
//     opts.Rounding is overridden with RoundCeil so the result always
//     respects the real weights; on integer weights both policies agree.
//
// Errors: ErrNilCatalog, ErrInvalidOptions, ErrInvalidCapacity,
// ErrCatalogTooLarge, ErrTableTooLarge, ErrUnsupportedAlgorithm.
func Solve(c *Catalog, capacity float64, opts Options) (Solution, error) {
	if c == nil {
		return Solution{}, ErrNilCatalog
	}
	if err := validateOptions(opts); err != nil {
		return Solution{}, err
	}
	if err := validateCapacity(capacity); err != nil {
		return Solution{}, err
	}

	switch opts.Algo {
	case AlgoExhaustive:
		return Exhaustive(c, capacity, opts)
	case AlgoDynamic:
		return Dynamic(c, capacity, opts)
	case AlgoAuto:
		algo, err := Pick(c, capacity, opts)
		if err != nil {
			return Solution{}, err
		}
		if algo == AlgoDynamic {
			opts.Rounding = RoundCeil
			return Dynamic(c, capacity, opts)
		}

		return Exhaustive(c, capacity, opts)
	default:
		return Solution{}, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, opts.Algo)
	}
}

// Pick reports the concrete solver AlgoAuto would run for these inputs.
// For AlgoDynamic and AlgoExhaustive it returns opts.Algo unchanged.
//
// AlgoAuto resolves, in order:
//   - Dynamic when capacity is integral, the table fits opts.MaxTableCells
//     and every weight is a whole number;
//   - Exhaustive when c.Len() ≤ opts.ExhaustiveLimit;
//   - Dynamic (run by Solve with ceiling rounding) when the table fits;
//   - ErrCatalogTooLarge otherwise.
func Pick(c *Catalog, capacity float64, opts Options) (Algorithm, error) {
	switch opts.Algo {
	case AlgoDynamic, AlgoExhaustive:
		return opts.Algo, nil
	case AlgoAuto:
	default:
		return opts.Algo, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, opts.Algo)
	}

	if c == nil {
		return AlgoAuto, ErrNilCatalog
	}
	if err := validateCapacity(capacity); err != nil {
		return AlgoAuto, err
	}

	n := c.Len()
	W, err := integralCapacity(capacity)
	table := err == nil && tableFits(n, W, opts.MaxTableCells)
	switch {
	case table && c.integralWeights():
		return AlgoDynamic, nil
	case n <= opts.ExhaustiveLimit:
		return AlgoExhaustive, nil
	case table:
		return AlgoDynamic, nil
	default:
		return AlgoAuto, fmt.Errorf("%w: %d items, limit %d, capacity %v",
			ErrCatalogTooLarge, n, opts.ExhaustiveLimit, capacity)
	}
}
