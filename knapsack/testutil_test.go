// Package knapsack_test - helpers shared by the *_test.go files.
package knapsack_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/pantry/knapsack"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet drives every randomized test; same seed ⇒ same catalogs.
	seedDet int64 = 1

	// randRounds is the number of random instances per cross-check.
	randRounds = 200
)

// row is a compact item literal for table-driven tests.
type row struct {
	name     string
	weight   float64
	calories float64
}

// mustCatalog builds a Catalog from rows, failing the test on invalid items.
func mustCatalog(t testing.TB, rows ...row) *knapsack.Catalog {
	t.Helper()
	c := knapsack.NewCatalog()
	for _, s := range rows {
		_, err := c.Add(s.name, s.weight, s.calories)
		require.NoError(t, err)
	}

	return c
}

// abcd is the four-item reference catalog: capacity 5 ⇒ A+B, 7 calories.
func abcd(t testing.TB) *knapsack.Catalog {
	return mustCatalog(t,
		row{"A", 2, 3},
		row{"B", 3, 4},
		row{"C", 4, 5},
		row{"D", 5, 6},
	)
}

// randomIntCatalog returns n items with integer weights in [1, maxW] and
// integer calories in [0, maxV]. Integer values keep float sums exact.
func randomIntCatalog(t testing.TB, rng *rand.Rand, n, maxW, maxV int) *knapsack.Catalog {
	t.Helper()
	c := knapsack.NewCatalog()
	for i := 0; i < n; i++ {
		_, err := c.Add(
			fmt.Sprintf("item-%02d", i),
			float64(1+rng.Intn(maxW)),
			float64(rng.Intn(maxV+1)),
		)
		require.NoError(t, err)
	}

	return c
}

// requireFeasible checks the aggregate fields of sol against c and capacity.
func requireFeasible(t testing.TB, c *knapsack.Catalog, sol knapsack.Solution, capacity float64) {
	t.Helper()
	w, v, err := c.Totals(sol.Indices)
	require.NoError(t, err)
	require.Equal(t, w, sol.Weight, "weight must match selected items")
	require.Equal(t, v, sol.Calories, "calories must match selected items")
	require.LessOrEqual(t, sol.Weight, capacity, "solution must fit the capacity")

	seen := make(map[int]struct{}, sol.Len())
	for _, i := range sol.Indices {
		_, dup := seen[i]
		require.False(t, dup, "index %d selected twice", i)
		seen[i] = struct{}{}
	}
}
