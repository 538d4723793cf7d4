// Package knapsack - instance construction and candidate evaluation.
//
// All methods on *Instance are read-only; an Instance may be shared freely
// across goroutines once built.
package knapsack

// DefaultCapacity is the capacity of DefaultInstance.
const DefaultCapacity = 50

// Instance is a validated item catalog with a weight capacity.
// Build it with NewInstance or DefaultInstance; the zero value is not usable.
type Instance struct {
	items    []Item
	capacity int
}

// NewInstance validates items and capacity and returns an Instance that owns
// a private copy of items.
//
// Errors: ErrNoItems, ErrNegativeWeight, ErrNegativeValue, ErrNegativeCapacity.
//
// Complexity: O(n).
func NewInstance(items []Item, capacity int) (*Instance, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}

	var it Item
	for _, it = range items {
		if it.Weight < 0 {
			return nil, ErrNegativeWeight
		}
		if it.Value < 0 {
			return nil, ErrNegativeValue
		}
	}

	cp := make([]Item, len(items))
	copy(cp, items)

	return &Instance{items: cp, capacity: capacity}, nil
}

// DefaultInstance returns the 3-item catalog [(10,60), (20,100), (30,120)]
// with capacity 50. Its optimum is {item 2, item 3}: weight 50, value 220.
func DefaultInstance() *Instance {
	return &Instance{
		items: []Item{
			{Weight: 10, Value: 60},
			{Weight: 20, Value: 100},
			{Weight: 30, Value: 120},
		},
		capacity: DefaultCapacity,
	}
}

// Len returns the number of items, which is also the required candidate length.
func (in *Instance) Len() int { return len(in.items) }

// Capacity returns the weight limit.
func (in *Instance) Capacity() int { return in.capacity }

// Items returns a copy of the catalog.
func (in *Instance) Items() []Item {
	out := make([]Item, len(in.items))
	copy(out, in.items)

	return out
}

// Validate checks that c has exactly Len() genes, each 0 or 1.
//
// Complexity: O(n).
func (in *Instance) Validate(c Candidate) error {
	if len(c) != len(in.items) {
		return ErrLengthMismatch
	}
	for _, g := range c {
		if g > 1 {
			return ErrInvalidGene
		}
	}

	return nil
}

// Evaluate scores c against the instance. It has no side effects: calling it
// twice with the same candidate yields identical results.
//
// Complexity: O(n).
func (in *Instance) Evaluate(c Candidate) (Evaluation, error) {
	if err := in.Validate(c); err != nil {
		return Evaluation{}, err
	}

	var (
		ev Evaluation
		i  int
	)
	for i = range c {
		if c[i] == 1 {
			ev.Weight += in.items[i].Weight
			ev.Value += in.items[i].Value
		}
	}
	ev.Feasible = ev.Weight <= in.capacity
	if ev.Feasible {
		ev.Fitness = ev.Value
	}

	return ev, nil
}

// Fitness returns the total value of c when it fits, otherwise 0.
func (in *Instance) Fitness(c Candidate) (int, error) {
	ev, err := in.Evaluate(c)
	if err != nil {
		return 0, err
	}

	return ev.Fitness, nil
}

// Weight returns the total weight of the items selected by c.
func (in *Instance) Weight(c Candidate) (int, error) {
	ev, err := in.Evaluate(c)
	if err != nil {
		return 0, err
	}

	return ev.Weight, nil
}
