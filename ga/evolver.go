package ga

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/knapga/knapsack"
)

// Evolver runs a generational GA over one knapsack instance.
//
// Algorithm Outline:
//  1. Draw PopulationSize random candidates.
//  2. Repeat Generations times:
//     a. score every candidate;
//     b. PopulationSize/2 times: select two parents by roulette wheel,
//     cross them at one point, mutate both children, append them;
//     c. replace the population with the offspring (no elitism).
//  3. Score the final population and return its first best candidate.
//
// An Evolver holds its Source across calls to Run, so consecutive runs draw
// from one continuing stream. It is not safe for concurrent use.
type Evolver struct {
	inst *knapsack.Instance
	opts Options
	rng  Source
	log  *zap.Logger
}

// New validates opts (after applying overrides to DefaultOptions) and returns
// an Evolver bound to inst.
//
// Errors: ErrNilInstance plus those of validateOptions.
func New(inst *knapsack.Instance, opts ...Option) (*Evolver, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}

	var o = DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	if err := validateOptions(o); err != nil {
		return nil, err
	}

	var log = o.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Evolver{
		inst: inst,
		opts: o,
		rng:  sourceFor(o),
		log:  log,
	}, nil
}

// Options returns the resolved configuration.
func (e *Evolver) Options() Options { return e.opts }

// Run executes the full generational loop and reports the best candidate of
// the final population together with its fitness and total weight.
//
// Complexity: O(G·P·(n + P)) for G generations, population P and n items;
// the P² term is roulette selection, negligible at the default sizes.
func (e *Evolver) Run() (Result, error) {
	pop, err := InitPopulation(e.opts.PopulationSize, e.inst.Len(), e.rng)
	if err != nil {
		return Result{}, err
	}

	var (
		history = make([]GenerationStats, 0, e.opts.Generations+1)
		scores  []int
		stats   GenerationStats
		g       int
	)
	for g = 0; g < e.opts.Generations; g++ {
		if scores, stats, err = e.evaluate(pop, g); err != nil {
			return Result{}, fmt.Errorf("generation %d: %w", g, err)
		}
		history = append(history, stats)
		e.logStats(stats)

		if pop, err = e.breed(pop, scores); err != nil {
			return Result{}, fmt.Errorf("generation %d: %w", g, err)
		}
	}

	if scores, stats, err = e.evaluate(pop, g); err != nil {
		return Result{}, fmt.Errorf("final generation: %w", err)
	}
	history = append(history, stats)
	e.logStats(stats)

	var best = 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	weight, err := e.inst.Weight(pop[best])
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Best:        pop[best].Clone(),
		Fitness:     scores[best],
		Weight:      weight,
		Generations: e.opts.Generations,
		History:     history,
	}
	e.log.Debug("evolution finished",
		zap.Stringer("best", res.Best),
		zap.Int("fitness", res.Fitness),
		zap.Int("weight", res.Weight),
		zap.Int("generations", res.Generations),
	)

	return res, nil
}

// breed builds the next generation from pop and its scores.
func (e *Evolver) breed(pop Population, scores []int) (Population, error) {
	var (
		next           = make(Population, 0, e.opts.PopulationSize)
		p1, p2, c1, c2 knapsack.Candidate
		err            error
		i              int
	)
	for i = 0; i < e.opts.PopulationSize/2; i++ {
		if p1, err = Select(pop, scores, e.rng); err != nil {
			return nil, err
		}
		if p2, err = Select(pop, scores, e.rng); err != nil {
			return nil, err
		}
		if c1, c2, err = Crossover(p1, p2, e.rng); err != nil {
			return nil, err
		}
		c1 = Mutate(c1, e.opts.MutationRate, e.rng)
		c2 = Mutate(c2, e.opts.MutationRate, e.rng)
		next = append(next, c1, c2)
	}

	return next, nil
}

// evaluate scores every candidate of pop and summarizes the generation.
func (e *Evolver) evaluate(pop Population, generation int) ([]int, GenerationStats, error) {
	var (
		scores = make([]int, len(pop))
		stats  = GenerationStats{Generation: generation, Size: len(pop)}
		sum    int
		ev     knapsack.Evaluation
		err    error
		i      int
	)
	for i = range pop {
		if ev, err = e.inst.Evaluate(pop[i]); err != nil {
			return nil, GenerationStats{}, err
		}
		scores[i] = ev.Fitness
		sum += ev.Fitness
		if ev.Feasible {
			stats.Feasible++
		}
		if i == 0 || ev.Fitness > stats.Best {
			stats.Best = ev.Fitness
		}
		if i == 0 || ev.Fitness < stats.Worst {
			stats.Worst = ev.Fitness
		}
	}
	if len(pop) > 0 {
		stats.Mean = float64(sum) / float64(len(pop))
	}

	return scores, stats, nil
}

func (e *Evolver) logStats(s GenerationStats) {
	e.log.Debug("generation evaluated",
		zap.Int("generation", s.Generation),
		zap.Int("size", s.Size),
		zap.Int("best", s.Best),
		zap.Float64("mean", s.Mean),
		zap.Int("worst", s.Worst),
		zap.Int("feasible", s.Feasible),
	)
}
