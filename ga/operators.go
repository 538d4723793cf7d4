// Package ga - genetic operators.
//
// Every operator is a pure function of its inputs plus the draws it takes
// from the supplied Source. None of them modifies its arguments: crossover
// and mutation always return freshly allocated candidates, so a parent that
// was selected twice (or is still referenced by the old population) can never
// be changed through a child.
package ga

import "github.com/katalvlaran/knapga/knapsack"

// InitPopulation builds n candidates of the given gene count, each gene drawn
// independently and uniformly from {0, 1}. No feasibility constraint is applied.
//
// Errors: ErrPopulationSize (n < 1), ErrGeneCount (genes < 1).
//
// Complexity: O(n·genes).
func InitPopulation(n, genes int, rng Source) (Population, error) {
	if n < 1 {
		return nil, ErrPopulationSize
	}
	if genes < 1 {
		return nil, ErrGeneCount
	}

	var (
		pop  = make(Population, n)
		i, j int
	)
	for i = 0; i < n; i++ {
		c := make(knapsack.Candidate, genes)
		for j = 0; j < genes; j++ {
			c[j] = uint8(rng.Intn(2))
		}
		pop[i] = c
	}

	return pop, nil
}

// Select performs roulette-wheel selection: candidate i is returned with
// probability scores[i] / Σscores. A zero-score candidate is never chosen
// while the total is positive. When every score is zero the wheel has no
// area, so one candidate is drawn uniformly instead.
//
// The returned candidate aliases pop[i]; callers must treat it as read-only.
//
// Errors: ErrEmptyPopulation, ErrScoreMismatch, ErrNegativeFitness.
//
// Complexity: O(n).
func Select(pop Population, scores []int, rng Source) (knapsack.Candidate, error) {
	i, err := selectIndex(pop, scores, rng)
	if err != nil {
		return nil, err
	}

	return pop[i], nil
}

// selectIndex spins the wheel once and returns the winning index.
// The spin is an integer in [0, total) and the winner is the first index whose
// cumulative score exceeds it, so each index owns exactly scores[i] slots.
func selectIndex(pop Population, scores []int, rng Source) (int, error) {
	if len(pop) == 0 {
		return 0, ErrEmptyPopulation
	}
	if len(scores) != len(pop) {
		return 0, ErrScoreMismatch
	}

	var (
		total int
		s     int
	)
	for _, s = range scores {
		if s < 0 {
			return 0, ErrNegativeFitness
		}
		total += s
	}
	if total == 0 {
		return rng.Intn(len(pop)), nil
	}

	var (
		spin = rng.Intn(total)
		cum  int
		i    int
	)
	for i, s = range scores {
		cum += s
		if spin < cum {
			return i, nil
		}
	}

	// Unreachable: spin < total == final cum.
	return len(scores) - 1, nil
}

// Crossover performs single-point crossover with a cut point drawn uniformly
// from {1, …, len-1}; a fresh point is drawn on every call. Parents shorter
// than two genes have no valid cut point, so the children are plain copies.
//
// Errors: ErrParentMismatch.
//
// Complexity: O(len).
func Crossover(p1, p2 knapsack.Candidate, rng Source) (knapsack.Candidate, knapsack.Candidate, error) {
	if len(p1) != len(p2) {
		return nil, nil, ErrParentMismatch
	}
	if len(p1) < 2 {
		return p1.Clone(), p2.Clone(), nil
	}

	return CrossoverAt(p1, p2, 1+rng.Intn(len(p1)-1))
}

// CrossoverAt splits both parents at cut point k and swaps the suffixes:
//
//	c1 = p1[:k] + p2[k:]
//	c2 = p2[:k] + p1[k:]
//
// Errors: ErrParentMismatch, ErrCutPoint (k ∉ [1, len-1]).
//
// Complexity: O(len).
func CrossoverAt(p1, p2 knapsack.Candidate, k int) (knapsack.Candidate, knapsack.Candidate, error) {
	if len(p1) != len(p2) {
		return nil, nil, ErrParentMismatch
	}
	if k < 1 || k > len(p1)-1 {
		return nil, nil, ErrCutPoint
	}

	var (
		n  = len(p1)
		c1 = make(knapsack.Candidate, n)
		c2 = make(knapsack.Candidate, n)
	)
	copy(c1[:k], p1[:k])
	copy(c1[k:], p2[k:])
	copy(c2[:k], p2[:k])
	copy(c2[k:], p1[k:])

	return c1, c2, nil
}

// Mutate returns a copy of c in which each gene is flipped independently with
// probability rate. One Float64 is drawn per gene regardless of the rate, so
// rate 0 never flips and rate 1 always flips. There is no guarantee that any
// gene changes.
//
// Complexity: O(len).
func Mutate(c knapsack.Candidate, rate float64, rng Source) knapsack.Candidate {
	var (
		out = c.Clone()
		i   int
	)
	for i = range out {
		if rng.Float64() < rate {
			out[i] = 1 - out[i]
		}
	}

	return out
}
