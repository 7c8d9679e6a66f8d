// Package pantry plans food boxes: given a catalog of foods with weights and
// calories, it finds the subset with the most calories that fits a weight
// limit.
//
// Under the hood the work is split across small packages:
//
//	knapsack/        - Item, Catalog, Solution; exhaustive and dynamic solvers
//	fooddb/          - catalog loading (^-delimited text, YAML)
//	report/          - pure summaries of a solution; text, YAML, JSON writers
//	cmd/maxcalorie/  - command-line front end
//	examples/        - a runnable pantry scenario
//
// Quick start:
//
//	go run ./cmd/maxcalorie solve --db foods.txt --capacity 64
//
//	go get github.com/katalvlaran/pantry/knapsack
package pantry
