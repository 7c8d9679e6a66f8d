// Package fooddb loads food catalogs for the knapsack solvers.
//
// Two formats are understood:
//
//	Delimited text (default) - one header row, then one item per row with
//	exactly three '^'-separated fields: description, weight in ounces,
//	calories.
//
//	    description^weight_ounces^calories
//	    spicy chicken breast^6.5^284
//
//	YAML - a document with an items list:
//
//	    items:
//	      - name: spicy chicken breast
//	        weight: 6.5
//	        calories: 284
//
// A row with the wrong number of fields aborts the load with ErrFieldCount.
// Rows whose numbers do not parse, or whose values are not a valid
// knapsack.Item, are skipped; WithOnSkip observes them.
package fooddb
