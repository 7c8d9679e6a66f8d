package fooddb

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pantry/knapsack"
)

type document struct {
	Items []entry `yaml:"items"`
}

type entry struct {
	Name     string  `yaml:"name"`
	Weight   float64 `yaml:"weight"`
	Calories float64 `yaml:"calories"`
}

// LoadYAML reads a YAML catalog from r. Unknown keys are rejected; an empty
// document yields an empty catalog. Invalid items are skipped and reported
// by their 1-based position in the list.
func LoadYAML(r io.Reader, opts ...Option) (*knapsack.Catalog, error) {
	o := gatherOptions(opts)

	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	c := knapsack.NewCatalog()
	for i, e := range doc.Items {
		if _, err := c.Add(e.Name, e.Weight, e.Calories); err != nil {
			o.skip(i+1, err)
		}
	}

	return c, nil
}
