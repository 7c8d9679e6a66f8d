// Package report turns knapsack solutions into plain data and renders it.
//
// Summarize is pure: it resolves a Solution against its Catalog and returns
// a Report value. The Write* functions only format; none of them print to
// the process's stdout on their own.
package report

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/pantry/knapsack"
)

// ErrUnknownFormat indicates a format name that Write does not support.
var ErrUnknownFormat = errors.New("report: unknown format")

// Line is one selected item.
type Line struct {
	Index    int     `json:"index" yaml:"index"`
	Name     string  `json:"name" yaml:"name"`
	Weight   float64 `json:"weight" yaml:"weight"`
	Calories float64 `json:"calories" yaml:"calories"`
}

// Report summarizes one solver run.
type Report struct {
	Algorithm     string  `json:"algorithm" yaml:"algorithm"`
	CatalogSize   int     `json:"catalog_size" yaml:"catalog_size"`
	Capacity      float64 `json:"capacity" yaml:"capacity"`
	Items         []Line  `json:"items" yaml:"items"`
	TotalWeight   float64 `json:"total_weight" yaml:"total_weight"`
	TotalCalories float64 `json:"total_calories" yaml:"total_calories"`
	// Utilization is TotalWeight/Capacity, or 0 for a zero capacity.
	Utilization float64 `json:"utilization" yaml:"utilization"`
	// Elapsed is the solver wall time when the caller measured it.
	Elapsed time.Duration `json:"elapsed_ns,omitempty" yaml:"elapsed,omitempty"`
}

// Summarize resolves sol against c. Totals are recomputed from the catalog
// in Indices order and rounded to 1e-6 to hide summation noise.
func Summarize(c *knapsack.Catalog, sol knapsack.Solution, capacity float64, algo knapsack.Algorithm) (Report, error) {
	if c == nil {
		return Report{}, knapsack.ErrNilCatalog
	}

	r := Report{
		Algorithm:   algo.String(),
		CatalogSize: c.Len(),
		Capacity:    capacity,
		Items:       make([]Line, 0, sol.Len()),
	}
	for _, i := range sol.Indices {
		it, err := c.At(i)
		if err != nil {
			return Report{}, fmt.Errorf("report: item %d: %w", i, err)
		}
		r.Items = append(r.Items, Line{Index: i, Name: it.Name, Weight: it.Weight, Calories: it.Calories})
	}

	w, v, err := c.Totals(sol.Indices)
	if err != nil {
		return Report{}, err
	}
	r.TotalWeight = round6(w)
	r.TotalCalories = round6(v)
	if capacity > 0 {
		r.Utilization = round6(w / capacity)
	}

	return r, nil
}

// round6 rounds to 1e-6.
func round6(x float64) float64 {
	return math.Round(x*1e6) / 1e6
}
