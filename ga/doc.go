// Package ga solves 0/1 knapsack instances with a generational genetic algorithm.
//
// The loop is the textbook one:
//
//	init → [ evaluate → roulette select ×2 → single-point crossover → bit-flip mutate ×2 ]^(P/2) → replace
//
// repeated for a fixed number of generations, after which the best candidate
// of the final population is reported.
//
// Key properties:
//   - Fixed, even population size; the population is replaced wholesale each
//     generation (no elitism, no overlap).
//   - Roulette-wheel selection with a uniform fallback when every score is zero.
//   - Crossover cut point drawn from {1, …, len-1}: at least one gene is exchanged.
//   - Operators never mutate their inputs; children are fresh slices.
//   - All randomness comes from an injected Source; seed 0 maps to a fixed
//     default stream, so runs are reproducible unless the caller opts out.
//
// Usage:
//
//	ev, err := ga.New(knapsack.DefaultInstance(),
//		ga.WithSeed(42),
//		ga.WithLogger(logger),
//	)
//	if err != nil {
//		// handle ErrOddPopulation, ErrMutationRate, …
//	}
//	res, err := ev.Run()
//	fmt.Println(res.Best, res.Fitness, res.Weight)
//
// Complexity per generation: O(P·n) for evaluation and variation, O(P²) for
// selection (P roulette spins over P slots).
package ga
