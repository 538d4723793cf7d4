// Package knapga solves the 0/1 knapsack problem with a generational
// genetic algorithm.
//
// What is inside:
//
//	knapsack/  - problem model: Item, Instance, Candidate, fitness evaluation
//	             and an exhaustive ground-truth solver for small catalogs
//	ga/        - the Evolver: options, seeded RNG policy, roulette-wheel
//	             selection, single-point crossover, bit-flip mutation and the
//	             generational replacement loop
//	cmd/knapga - CLI that runs the canonical 3-item instance and prints the
//	             best solution, its value and its weight
//
// Quick example:
//
//	ev, _ := ga.New(knapsack.DefaultInstance(), ga.WithSeed(42))
//	res, _ := ev.Run()
//	fmt.Println(res.Best, res.Fitness, res.Weight)
//
// Everything is single-threaded and deterministic under a fixed seed.
//
//	go install github.com/katalvlaran/knapga/cmd/knapga@latest
package knapga
