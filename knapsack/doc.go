// Package knapsack models the 0/1 knapsack problem used by the genetic solver.
//
// An Instance is an immutable catalog of items (weight, value) plus a weight
// capacity. A Candidate is a bit-vector with one gene per item: 1 puts the
// item in the knapsack, 0 leaves it out.
//
// Fitness rule:
//
//	fitness(c) = Σ value[i]·c[i]   if Σ weight[i]·c[i] ≤ capacity
//	fitness(c) = 0                 otherwise
//
// Infeasible candidates are neither penalized proportionally nor repaired;
// they simply score zero.
//
// The package also carries an exhaustive solver (Optimum) that enumerates all
// 2ⁿ candidates. It is meant for small catalogs (n ≤ MaxExhaustiveItems) and
// serves as a ground truth for heuristic results.
//
// Usage:
//
//	inst := knapsack.DefaultInstance()
//	ev, err := inst.Evaluate(knapsack.Candidate{0, 1, 1})
//	// ev.Weight == 50, ev.Value == 220, ev.Feasible == true
//
// Complexity:
//
//   - Evaluate / Fitness / Weight: O(n)
//   - Optimum: O(n·2ⁿ)
package knapsack
