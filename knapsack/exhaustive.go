// Package knapsack - exhaustive ground-truth solver.
//
// Optimum walks every subset mask in increasing order (0 … 2ⁿ−1) where bit i
// of the mask selects item i. Ties are resolved in favour of the first mask
// reached, which makes the result fully deterministic.
package knapsack

// Optimum returns the best feasible candidate and its evaluation.
// The empty selection (fitness 0) is always feasible, so a result exists for
// every valid instance.
//
// Errors: ErrTooManyItems when Len() > MaxExhaustiveItems.
//
// Complexity: O(n·2ⁿ) time, O(n) space.
func (in *Instance) Optimum() (Candidate, Evaluation, error) {
	var n = len(in.items)
	if n > MaxExhaustiveItems {
		return nil, Evaluation{}, ErrTooManyItems
	}

	var (
		total = uint32(1) << uint(n)
		mask  uint32
		cur   = make(Candidate, n)
		best  = make(Candidate, n)
		bestE Evaluation
		ev    Evaluation
		i     int
	)
	for mask = 0; mask < total; mask++ {
		for i = 0; i < n; i++ {
			cur[i] = uint8((mask >> uint(i)) & 1)
		}
		ev, _ = in.Evaluate(cur) // cur is well-formed by construction
		if mask == 0 || ev.Fitness > bestE.Fitness {
			bestE = ev
			copy(best, cur)
		}
	}

	return best, bestE, nil
}
