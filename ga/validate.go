// Package ga - option validation.
//
// Deterministic, side-effect free; returns only sentinels from types.go.
package ga

import "math"

// validateOptions checks Options for internal consistency.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.PopulationSize < 2 {
		return ErrPopulationSize
	}
	// Offspring come in pairs; an odd size would shrink the population by one.
	if opts.PopulationSize%2 != 0 {
		return ErrOddPopulation
	}
	if opts.Generations < 0 {
		return ErrGenerations
	}
	if math.IsNaN(opts.MutationRate) || opts.MutationRate < 0 || opts.MutationRate > 1 {
		return ErrMutationRate
	}

	return nil
}
