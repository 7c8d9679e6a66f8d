package knapsack_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/pantry/knapsack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExhaustive_Reference checks the four-item reference instance.
func TestExhaustive_Reference(t *testing.T) {
	c := abcd(t)
	sol, err := knapsack.Exhaustive(c, 5, knapsack.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, sol.Indices, "A+B in ascending index order")
	assert.Equal(t, 7.0, sol.Calories)
	assert.Equal(t, 5.0, sol.Weight)
	requireFeasible(t, c, sol, 5)
}

// TestExhaustive_EmptyCatalog yields an empty solution with zero calories.
func TestExhaustive_EmptyCatalog(t *testing.T) {
	sol, err := knapsack.Exhaustive(knapsack.NewCatalog(), 10, knapsack.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, sol.IsEmpty())
	assert.Zero(t, sol.Calories)
	assert.Zero(t, sol.Weight)
}

// TestExhaustive_ZeroCapacity selects nothing.
func TestExhaustive_ZeroCapacity(t *testing.T) {
	sol, err := knapsack.Exhaustive(abcd(t), 0, knapsack.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, sol.IsEmpty())
}

// TestExhaustive_SingleItem: a fitting lone item is selected.
func TestExhaustive_SingleItem(t *testing.T) {
	c := mustCatalog(t, row{"bread", 3, 250})
	sol, err := knapsack.Exhaustive(c, 3, knapsack.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0}, sol.Indices)
	assert.Equal(t, 250.0, sol.Calories)
}

// TestExhaustive_NothingFits returns an empty solution, not an error.
func TestExhaustive_NothingFits(t *testing.T) {
	c := mustCatalog(t, row{"melon", 10, 300}, row{"squash", 12, 200})
	sol, err := knapsack.Exhaustive(c, 3, knapsack.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, sol.IsEmpty())
}

// TestExhaustive_TieKeepsFirst: equal-valued subsets resolve to the lowest mask.
func TestExhaustive_TieKeepsFirst(t *testing.T) {
	c := mustCatalog(t, row{"a", 1, 5}, row{"b", 1, 5}, row{"c", 2, 5})
	sol, err := knapsack.Exhaustive(c, 1, knapsack.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0}, sol.Indices)

	// Capacity 2: {a,b} (mask 3) beats {c} (mask 4) on calories outright.
	sol, err = knapsack.Exhaustive(c, 2, knapsack.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, sol.Indices)
	assert.Equal(t, 10.0, sol.Calories)
}

// TestExhaustive_FractionalWeights uses real weights without rounding.
func TestExhaustive_FractionalWeights(t *testing.T) {
	c := mustCatalog(t, row{"a", 2.5, 10}, row{"b", 2.5, 10}, row{"c", 0.5, 1})
	sol, err := knapsack.Exhaustive(c, 5, knapsack.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, sol.Indices)
	assert.Equal(t, 20.0, sol.Calories)
	requireFeasible(t, c, sol, 5)

	sol, err = knapsack.Exhaustive(c, 5.5, knapsack.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, sol.Indices)
}

// TestExhaustive_TooLarge fails fast beyond ExhaustiveLimit.
func TestExhaustive_TooLarge(t *testing.T) {
	c := knapsack.NewCatalog()
	for i := 0; i <= knapsack.DefaultExhaustiveLimit; i++ {
		_, err := c.Add(fmt.Sprintf("i%d", i), 1, 1)
		require.NoError(t, err)
	}
	_, err := knapsack.Exhaustive(c, 10, knapsack.DefaultOptions())
	assert.ErrorIs(t, err, knapsack.ErrCatalogTooLarge)

	opts := knapsack.DefaultOptions()
	opts.ExhaustiveLimit = 3
	_, err = knapsack.Exhaustive(abcd(t), 5, opts)
	assert.ErrorIs(t, err, knapsack.ErrCatalogTooLarge)
}

// TestExhaustive_BadInput covers nil catalog, bad capacity and bad options.
func TestExhaustive_BadInput(t *testing.T) {
	opts := knapsack.DefaultOptions()

	_, err := knapsack.Exhaustive(nil, 5, opts)
	assert.ErrorIs(t, err, knapsack.ErrNilCatalog)

	for _, capacity := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err = knapsack.Exhaustive(abcd(t), capacity, opts)
		assert.ErrorIs(t, err, knapsack.ErrInvalidCapacity, "capacity %v", capacity)
	}

	bad := opts
	bad.ExhaustiveLimit = knapsack.MaxExhaustiveItems + 1
	_, err = knapsack.Exhaustive(abcd(t), 5, bad)
	assert.ErrorIs(t, err, knapsack.ErrInvalidOptions)

	_, err = knapsack.Exhaustive(abcd(t), 5, knapsack.Options{})
	assert.ErrorIs(t, err, knapsack.ErrInvalidOptions)
}
