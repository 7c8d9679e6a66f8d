// SPDX-License-Identifier: MIT

package knapsack

import (
	"fmt"
	"strings"
)

// Algorithm selects the solver used by Solve.
type Algorithm int

const (
	// AlgoAuto picks a solver per input (see Pick) and never returns a
	// selection heavier than the capacity.
	AlgoAuto Algorithm = iota

	// AlgoDynamic is the integer-capacity dynamic program.
	AlgoDynamic

	// AlgoExhaustive enumerates every subset.
	AlgoExhaustive
)

// String returns the lower-case name used by ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgoAuto:
		return "auto"
	case AlgoDynamic:
		return "dynamic"
	case AlgoExhaustive:
		return "exhaustive"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a name ("auto", "dynamic"/"dp", "exhaustive") to an
// Algorithm. Unknown names yield ErrUnsupportedAlgorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return AlgoAuto, nil
	case "dynamic", "dp":
		return AlgoDynamic, nil
	case "exhaustive", "brute", "bruteforce":
		return AlgoExhaustive, nil
	default:
		return AlgoAuto, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
}

// Rounding controls how Dynamic turns real weights into table indices.
type Rounding int

const (
	// RoundTruncate truncates toward zero. Fractional weights lose
	// precision, and a solution may weigh up to n ounces more than the
	// capacity in the worst case.
	RoundTruncate Rounding = iota

	// RoundCeil rounds up, so every solution fits the capacity in real weight.
	RoundCeil
)

// String returns the lower-case name used by ParseRounding.
func (r Rounding) String() string {
	switch r {
	case RoundTruncate:
		return "truncate"
	case RoundCeil:
		return "ceil"
	default:
		return fmt.Sprintf("Rounding(%d)", int(r))
	}
}

// ParseRounding maps "truncate" or "ceil" to a Rounding.
func ParseRounding(s string) (Rounding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "truncate", "trunc":
		return RoundTruncate, nil
	case "ceil", "ceiling":
		return RoundCeil, nil
	default:
		return RoundTruncate, fmt.Errorf("%w: rounding %q", ErrInvalidOptions, s)
	}
}

// Limits and defaults.
const (
	// MaxExhaustiveItems is the hard ceiling for exhaustive enumeration.
	// The subset counter is a uint64; 1<<n must not overflow it.
	MaxExhaustiveItems = 62

	// DefaultExhaustiveLimit keeps exhaustive search within a few seconds.
	DefaultExhaustiveLimit = 24

	// DefaultMaxTableCells bounds the dynamic table to 16M cells (128 MiB).
	DefaultMaxTableCells = 1 << 24
)

// Options configures the solvers.
//
// Fields:
//   - Algo            - solver used by Solve (ignored by Exhaustive/Dynamic).
//   - Rounding        - weight→index conversion for Dynamic.
//   - ExhaustiveLimit - largest catalog Exhaustive accepts; 0..MaxExhaustiveItems.
//   - MaxTableCells   - largest (n+1)·(W+1) table Dynamic allocates; > 0.
//
// Start from DefaultOptions; the zero value fails with ErrInvalidOptions.
type Options struct {
	Algo            Algorithm
	Rounding        Rounding
	ExhaustiveLimit int
	MaxTableCells   int
}

// DefaultOptions returns:
//   - Algo:            AlgoAuto
//   - Rounding:        RoundTruncate
//   - ExhaustiveLimit: DefaultExhaustiveLimit
//   - MaxTableCells:   DefaultMaxTableCells
func DefaultOptions() Options {
	return Options{
		Algo:            AlgoAuto,
		Rounding:        RoundTruncate,
		ExhaustiveLimit: DefaultExhaustiveLimit,
		MaxTableCells:   DefaultMaxTableCells,
	}
}
