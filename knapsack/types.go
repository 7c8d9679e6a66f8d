// SPDX-License-Identifier: MIT

package knapsack

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the knapsack package.
// Match them with errors.Is; context may be wrapped around them.
var (
	// ErrInvalidItem indicates an empty name, a non-positive weight or a
	// negative calorie value (NaN and ±Inf are rejected as well).
	ErrInvalidItem = errors.New("knapsack: invalid item")

	// ErrInvalidCapacity indicates a capacity that is negative, not finite,
	// or (for the dynamic solver) not integral.
	ErrInvalidCapacity = errors.New("knapsack: invalid capacity")

	// ErrCatalogTooLarge indicates that exhaustive enumeration was requested
	// for more items than Options.ExhaustiveLimit allows.
	ErrCatalogTooLarge = errors.New("knapsack: catalog too large for exhaustive search")

	// ErrTableTooLarge indicates that the dynamic table would exceed
	// Options.MaxTableCells.
	ErrTableTooLarge = errors.New("knapsack: dynamic table too large")

	// ErrUnsupportedAlgorithm indicates an unknown Options.Algo value.
	ErrUnsupportedAlgorithm = errors.New("knapsack: unsupported algorithm")

	// ErrNilCatalog indicates that a nil *Catalog was passed to a solver.
	ErrNilCatalog = errors.New("knapsack: catalog is nil")

	// ErrIndexOutOfRange indicates an item index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("knapsack: index out of range")

	// ErrInvalidFilter indicates inconsistent Filter bounds.
	ErrInvalidFilter = errors.New("knapsack: invalid filter bounds")

	// ErrInvalidOptions indicates an Options value outside its documented range.
	ErrInvalidOptions = errors.New("knapsack: invalid options")
)

// Item is one food item available for selection.
// Fields are exported for reading; construct Items with NewItem so the
// invariants below hold.
//
//   - Name     - non-empty human-readable description.
//   - Weight   - ounces, finite and > 0.
//   - Calories - finite and ≥ 0.
type Item struct {
	Name     string
	Weight   float64
	Calories float64
}

// NewItem validates its arguments and returns an Item.
// Errors match ErrInvalidItem.
func NewItem(name string, weight, calories float64) (Item, error) {
	if name == "" {
		return Item{}, fmt.Errorf("%w: empty name", ErrInvalidItem)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return Item{}, fmt.Errorf("%w: %q weight %v must be positive", ErrInvalidItem, name, weight)
	}
	if math.IsNaN(calories) || math.IsInf(calories, 0) || calories < 0 {
		return Item{}, fmt.Errorf("%w: %q calories %v must be non-negative", ErrInvalidItem, name, calories)
	}

	return Item{Name: name, Weight: weight, Calories: calories}, nil
}

// Catalog is an ordered arena of Items. Solutions refer to Items by their
// index in the Catalog, so indices are stable for the life of the Catalog:
// items are only ever appended.
//
// A Catalog is not safe for concurrent mutation.
type Catalog struct {
	items []Item
}

// NewCatalog returns a Catalog holding items in the given order.
// The items are assumed to come from NewItem; they are copied.
func NewCatalog(items ...Item) *Catalog {
	c := &Catalog{items: make([]Item, len(items))}
	copy(c.items, items)

	return c
}

// Add validates and appends a new item, returning its index.
func (c *Catalog) Add(name string, weight, calories float64) (int, error) {
	it, err := NewItem(name, weight, calories)
	if err != nil {
		return -1, err
	}
	c.items = append(c.items, it)

	return len(c.items) - 1, nil
}

// Len reports the number of items. A nil Catalog has length 0.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}

	return len(c.items)
}

// At returns the item at index i or ErrIndexOutOfRange.
func (c *Catalog) At(i int) (Item, error) {
	if i < 0 || i >= c.Len() {
		return Item{}, ErrIndexOutOfRange
	}

	return c.items[i], nil
}

// Items returns a copy of all items in insertion order.
func (c *Catalog) Items() []Item {
	out := make([]Item, c.Len())
	if c != nil {
		copy(out, c.items)
	}

	return out
}

// Totals sums weight and calories over the given indices, in order.
// Out-of-range indices yield ErrIndexOutOfRange.
func (c *Catalog) Totals(indices []int) (weight, calories float64, err error) {
	for _, i := range indices {
		if i < 0 || i >= c.Len() {
			return 0, 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
		}
		weight += c.items[i].Weight
		calories += c.items[i].Calories
	}

	return weight, calories, nil
}

// integralWeights reports whether every item weight is a whole number.
func (c *Catalog) integralWeights() bool {
	for _, it := range c.items {
		if it.Weight != math.Trunc(it.Weight) {
			return false
		}
	}

	return true
}

// Solution is a feasible subset of a Catalog.
//
// Indices refer to the Catalog the solver was given. Their order is the
// order in which the solver picked the items: ascending for Exhaustive,
// descending (back-walk order) for Dynamic.
type Solution struct {
	Indices  []int
	Weight   float64
	Calories float64
}

// Len reports the number of selected items.
func (s Solution) Len() int { return len(s.Indices) }

// IsEmpty reports whether no item was selected.
func (s Solution) IsEmpty() bool { return len(s.Indices) == 0 }

// Items materializes the selected items from c, in Indices order.
// Indices that do not belong to c are skipped.
func (s Solution) Items(c *Catalog) []Item {
	out := make([]Item, 0, len(s.Indices))
	for _, i := range s.Indices {
		if it, err := c.At(i); err == nil {
			out = append(out, it)
		}
	}

	return out
}
