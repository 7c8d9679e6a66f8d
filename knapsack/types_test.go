package knapsack_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pantry/knapsack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewItem_Invalid checks every rejected field combination.
func TestNewItem_Invalid(t *testing.T) {
	cases := []struct {
		name     string
		item     string
		weight   float64
		calories float64
	}{
		{"empty name", "", 1, 1},
		{"zero weight", "x", 0, 1},
		{"negative weight", "x", -2, 1},
		{"NaN weight", "x", math.NaN(), 1},
		{"Inf weight", "x", math.Inf(1), 1},
		{"negative calories", "x", 1, -0.5},
		{"NaN calories", "x", 1, math.NaN()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := knapsack.NewItem(tc.item, tc.weight, tc.calories)
			assert.ErrorIs(t, err, knapsack.ErrInvalidItem)
		})
	}
}

// TestNewItem_ZeroCaloriesAllowed: calories may be zero, weight may be fractional.
func TestNewItem_ZeroCaloriesAllowed(t *testing.T) {
	it, err := knapsack.NewItem("water", 0.25, 0)
	require.NoError(t, err)
	assert.Equal(t, knapsack.Item{Name: "water", Weight: 0.25, Calories: 0}, it)
}

// TestCatalog_AddAndAt verifies indices are assigned in insertion order.
func TestCatalog_AddAndAt(t *testing.T) {
	c := knapsack.NewCatalog()
	i0, err := c.Add("rice", 16, 1600)
	require.NoError(t, err)
	i1, err := c.Add("beans", 15, 1200)
	require.NoError(t, err)
	assert.Equal(t, 0, i0)
	assert.Equal(t, 1, i1)
	assert.Equal(t, 2, c.Len())

	it, err := c.At(1)
	require.NoError(t, err)
	assert.Equal(t, "beans", it.Name)

	_, err = c.At(2)
	assert.ErrorIs(t, err, knapsack.ErrIndexOutOfRange)
	_, err = c.At(-1)
	assert.ErrorIs(t, err, knapsack.ErrIndexOutOfRange)

	idx, err := c.Add("", 1, 1)
	assert.ErrorIs(t, err, knapsack.ErrInvalidItem)
	assert.Equal(t, -1, idx)
	assert.Equal(t, 2, c.Len(), "rejected item must not be appended")
}

// TestCatalog_ItemsIsCopy ensures callers cannot mutate the arena.
func TestCatalog_ItemsIsCopy(t *testing.T) {
	c := abcd(t)
	items := c.Items()
	items[0].Name = "mutated"

	it, err := c.At(0)
	require.NoError(t, err)
	assert.Equal(t, "A", it.Name)
}

// TestCatalog_Nil: a nil catalog behaves as empty.
func TestCatalog_Nil(t *testing.T) {
	var c *knapsack.Catalog
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Items())
	_, err := c.At(0)
	assert.ErrorIs(t, err, knapsack.ErrIndexOutOfRange)
}

// TestCatalog_Totals sums the selected items and rejects foreign indices.
func TestCatalog_Totals(t *testing.T) {
	c := abcd(t)
	w, v, err := c.Totals([]int{1, 3})
	require.NoError(t, err)
	assert.Equal(t, 8.0, w)
	assert.Equal(t, 10.0, v)

	w, v, err = c.Totals(nil)
	require.NoError(t, err)
	assert.Zero(t, w)
	assert.Zero(t, v)

	_, _, err = c.Totals([]int{0, 9})
	assert.ErrorIs(t, err, knapsack.ErrIndexOutOfRange)
}

// TestSolution_Items materializes items in Indices order.
func TestSolution_Items(t *testing.T) {
	c := abcd(t)
	sol := knapsack.Solution{Indices: []int{1, 0}, Weight: 5, Calories: 7}

	items := sol.Items(c)
	require.Len(t, items, 2)
	assert.Equal(t, "B", items[0].Name)
	assert.Equal(t, "A", items[1].Name)
	assert.Equal(t, 2, sol.Len())
	assert.False(t, sol.IsEmpty())
	assert.True(t, knapsack.Solution{}.IsEmpty())
}
