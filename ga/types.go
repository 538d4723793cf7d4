package ga

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/knapga/knapsack"
)

// Sentinel errors returned by the ga package.
var (
	// ErrNilInstance indicates that New was called without a problem instance.
	ErrNilInstance = errors.New("ga: instance is nil")

	// ErrPopulationSize indicates PopulationSize < 2.
	ErrPopulationSize = errors.New("ga: population size must be at least 2")

	// ErrOddPopulation indicates an odd PopulationSize. Offspring are bred in
	// pairs, so only even sizes keep the population constant.
	ErrOddPopulation = errors.New("ga: population size must be even")

	// ErrGenerations indicates a negative generation count.
	ErrGenerations = errors.New("ga: generation count must be non-negative")

	// ErrMutationRate indicates a mutation rate outside [0, 1] (or NaN).
	ErrMutationRate = errors.New("ga: mutation rate must be within [0, 1]")

	// ErrGeneCount indicates a non-positive gene count for population initialization.
	ErrGeneCount = errors.New("ga: gene count must be positive")

	// ErrEmptyPopulation indicates selection from an empty population.
	ErrEmptyPopulation = errors.New("ga: population is empty")

	// ErrScoreMismatch indicates len(scores) != len(population).
	ErrScoreMismatch = errors.New("ga: fitness scores do not match population")

	// ErrNegativeFitness indicates a negative fitness score fed to roulette selection.
	ErrNegativeFitness = errors.New("ga: fitness scores must be non-negative")

	// ErrParentMismatch indicates crossover parents of different lengths.
	ErrParentMismatch = errors.New("ga: parents differ in length")

	// ErrCutPoint indicates a crossover cut point outside [1, len-1].
	ErrCutPoint = errors.New("ga: cut point out of range")
)

// Default parameters of the canonical run.
const (
	DefaultPopulationSize = 10
	DefaultGenerations    = 100
	DefaultMutationRate   = 0.1
)

// Population is one generation of candidates. Its size is fixed for a run.
type Population []knapsack.Candidate

// Options configures an Evolver.
//
// PopulationSize – even, ≥ 2.
// Generations    – number of replacement cycles, ≥ 0.
// MutationRate   – per-gene flip probability in [0, 1].
// Seed           – seed of the default RNG (0 ⇒ fixed default seed).
// Rand           – injected Source; overrides Seed when non-nil.
// Logger         – structured logger; nil ⇒ zap.NewNop().
type Options struct {
	PopulationSize int
	Generations    int
	MutationRate   float64
	Seed           int64
	Rand           Source
	Logger         *zap.Logger
}

// Option mutates Options; pass any number of them to New.
type Option func(*Options)

// WithPopulationSize sets the number of candidates per generation.
func WithPopulationSize(n int) Option {
	return func(o *Options) {
		o.PopulationSize = n
	}
}

// WithGenerations sets how many times the population is replaced.
func WithGenerations(n int) Option {
	return func(o *Options) {
		o.Generations = n
	}
}

// WithMutationRate sets the per-gene flip probability.
func WithMutationRate(rate float64) Option {
	return func(o *Options) {
		o.MutationRate = rate
	}
}

// WithSeed sets the seed of the default RNG. Ignored when WithRand is used.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand injects the randomness source used by every operator.
func WithRand(src Source) Option {
	return func(o *Options) {
		o.Rand = src
	}
}

// WithLogger attaches a zap logger for per-generation diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the canonical configuration:
//
//   - PopulationSize: 10
//   - Generations:    100
//   - MutationRate:   0.1
//   - Seed:           0 (deterministic default stream)
//   - Rand, Logger:   nil
func DefaultOptions() Options {
	return Options{
		PopulationSize: DefaultPopulationSize,
		Generations:    DefaultGenerations,
		MutationRate:   DefaultMutationRate,
	}
}

// GenerationStats summarizes the fitness of one evaluated population.
type GenerationStats struct {
	Generation int     // 0 is the initial population
	Size       int     // number of candidates
	Best       int     // highest fitness
	Worst      int     // lowest fitness
	Mean       float64 // average fitness
	Feasible   int     // candidates within capacity
}

// Result is the outcome of a run.
//
// Best is the first maximum-fitness candidate of the FINAL population; no
// best-ever tracking is done across generations. History holds one entry per
// evaluated population, i.e. Generations+1 entries.
type Result struct {
	Best        knapsack.Candidate
	Fitness     int
	Weight      int
	Generations int
	History     []GenerationStats
}
