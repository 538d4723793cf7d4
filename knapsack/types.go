package knapsack

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors returned by the knapsack package.
var (
	// ErrNoItems indicates that an instance was built with an empty catalog.
	ErrNoItems = errors.New("knapsack: item catalog is empty")

	// ErrNegativeWeight indicates an item with a weight below zero.
	ErrNegativeWeight = errors.New("knapsack: item weight must be non-negative")

	// ErrNegativeValue indicates an item with a value below zero.
	ErrNegativeValue = errors.New("knapsack: item value must be non-negative")

	// ErrNegativeCapacity indicates a capacity below zero.
	ErrNegativeCapacity = errors.New("knapsack: capacity must be non-negative")

	// ErrLengthMismatch indicates a candidate whose gene count differs from the item count.
	ErrLengthMismatch = errors.New("knapsack: candidate length does not match item count")

	// ErrInvalidGene indicates a gene other than 0 or 1.
	ErrInvalidGene = errors.New("knapsack: gene must be 0 or 1")

	// ErrTooManyItems indicates that exhaustive enumeration was requested
	// for a catalog larger than MaxExhaustiveItems.
	ErrTooManyItems = errors.New("knapsack: too many items for exhaustive search")
)

// MaxExhaustiveItems bounds Optimum; 2^24 candidates is the largest search we allow.
const MaxExhaustiveItems = 24

// Item is one entry of the catalog.
type Item struct {
	Weight int `yaml:"weight"`
	Value  int `yaml:"value"`
}

// Candidate encodes item inclusion: Candidate[i]==1 selects item i.
type Candidate []uint8

// Clone returns a deep copy of c. A nil candidate clones to nil.
func (c Candidate) Clone() Candidate {
	if c == nil {
		return nil
	}
	out := make(Candidate, len(c))
	copy(out, c)

	return out
}

// String renders c as "[g0, g1, …]".
func (c Candidate) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, g := range c {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(int(g)))
	}
	sb.WriteByte(']')

	return sb.String()
}

// Evaluation is the full outcome of scoring one candidate.
//
//	Weight   – total weight of selected items.
//	Value    – total value of selected items (regardless of feasibility).
//	Feasible – Weight ≤ capacity.
//	Fitness  – Value when Feasible, otherwise 0.
type Evaluation struct {
	Weight   int
	Value    int
	Feasible bool
	Fitness  int
}
