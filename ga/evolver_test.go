package ga_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/knapga/ga"
	"github.com/katalvlaran/knapga/knapsack"
)

// TestNew_Validation covers every configuration sentinel.
func TestNew_Validation(t *testing.T) {
	inst := knapsack.DefaultInstance()

	_, err := ga.New(nil)
	assert.ErrorIs(t, err, ga.ErrNilInstance)

	cases := []struct {
		name string
		opt  ga.Option
		want error
	}{
		{"population zero", ga.WithPopulationSize(0), ga.ErrPopulationSize},
		{"population one", ga.WithPopulationSize(1), ga.ErrPopulationSize},
		{"population odd", ga.WithPopulationSize(7), ga.ErrOddPopulation},
		{"generations negative", ga.WithGenerations(-1), ga.ErrGenerations},
		{"rate negative", ga.WithMutationRate(-0.01), ga.ErrMutationRate},
		{"rate above one", ga.WithMutationRate(1.5), ga.ErrMutationRate},
		{"rate NaN", ga.WithMutationRate(math.NaN()), ga.ErrMutationRate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ga.New(inst, tc.opt)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNew_Defaults checks the canonical parameters and option overrides.
func TestNew_Defaults(t *testing.T) {
	ev, err := ga.New(knapsack.DefaultInstance())
	require.NoError(t, err)
	o := ev.Options()
	assert.Equal(t, 10, o.PopulationSize)
	assert.Equal(t, 100, o.Generations)
	assert.Equal(t, 0.1, o.MutationRate)
	assert.Zero(t, o.Seed)

	ev, err = ga.New(knapsack.DefaultInstance(),
		ga.WithPopulationSize(4),
		ga.WithGenerations(0),
		ga.WithMutationRate(1),
		ga.WithSeed(9),
	)
	require.NoError(t, err)
	o = ev.Options()
	assert.Equal(t, 4, o.PopulationSize)
	assert.Equal(t, 0, o.Generations)
	assert.Equal(t, 1.0, o.MutationRate)
	assert.Equal(t, int64(9), o.Seed)
}

// TestRun_EndToEndSeeded runs the canonical configuration and checks the
// reported result is achievable and within the known bounds.
func TestRun_EndToEndSeeded(t *testing.T) {
	inst := knapsack.DefaultInstance()
	ev, err := ga.New(inst, ga.WithSeed(seedDet))
	require.NoError(t, err)

	res, err := ev.Run()
	require.NoError(t, err)

	require.Len(t, res.Best, 3)
	_, optimum, err := inst.Optimum()
	require.NoError(t, err)
	assert.LessOrEqual(t, res.Fitness, optimum.Fitness, "cannot beat the exhaustive optimum (220)")
	assert.Positive(t, res.Fitness)
	assert.LessOrEqual(t, res.Weight, inst.Capacity())

	fit, err := inst.Fitness(res.Best)
	require.NoError(t, err)
	assert.Equal(t, fit, res.Fitness, "reported fitness must match the reported candidate")
	weight, err := inst.Weight(res.Best)
	require.NoError(t, err)
	assert.Equal(t, weight, res.Weight)
	assert.Equal(t, 100, res.Generations)
}

// TestRun_History checks one stats entry per evaluated population and that
// the population size never changes.
func TestRun_History(t *testing.T) {
	ev, err := ga.New(knapsack.DefaultInstance(), ga.WithSeed(seedDet), ga.WithGenerations(25))
	require.NoError(t, err)
	res, err := ev.Run()
	require.NoError(t, err)

	require.Len(t, res.History, 26)
	for i, s := range res.History {
		assert.Equal(t, i, s.Generation)
		assert.Equal(t, 10, s.Size, "population size must stay constant")
		assert.LessOrEqual(t, s.Worst, s.Best)
		assert.GreaterOrEqual(t, s.Mean, float64(s.Worst))
		assert.LessOrEqual(t, s.Mean, float64(s.Best))
		assert.LessOrEqual(t, s.Feasible, s.Size)
	}
	assert.Equal(t, res.Fitness, res.History[len(res.History)-1].Best,
		"the result comes from the final generation")
}

// TestRun_Deterministic verifies same seed ⇒ same result, and that seed 0
// resolves to the fixed default stream.
func TestRun_Deterministic(t *testing.T) {
	run := func(opts ...ga.Option) ga.Result {
		ev, err := ga.New(knapsack.DefaultInstance(), opts...)
		require.NoError(t, err)
		res, err := ev.Run()
		require.NoError(t, err)

		return res
	}

	a := run(ga.WithSeed(seedDet))
	b := run(ga.WithSeed(seedDet))
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed diverged (-first +second):\n%s", diff)
	}

	if diff := cmp.Diff(run(ga.WithSeed(0)), run(ga.WithSeed(1))); diff != "" {
		t.Fatalf("seed 0 must map to the default seed (-seed0 +seed1):\n%s", diff)
	}
}

// TestRun_InjectedRandOverridesSeed checks that WithRand takes precedence.
func TestRun_InjectedRandOverridesSeed(t *testing.T) {
	ev1, err := ga.New(knapsack.DefaultInstance(), ga.WithSeed(99), ga.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	ev2, err := ga.New(knapsack.DefaultInstance(), ga.WithSeed(7))
	require.NoError(t, err)

	r1, err := ev1.Run()
	require.NoError(t, err)
	r2, err := ev2.Run()
	require.NoError(t, err)
	if diff := cmp.Diff(r1, r2); diff != "" {
		t.Fatalf("injected source ignored (-injected +seeded):\n%s", diff)
	}
}

// TestRun_ZeroGenerations returns the first best of the initial population.
func TestRun_ZeroGenerations(t *testing.T) {
	inst := knapsack.DefaultInstance()
	ev, err := ga.New(inst, ga.WithSeed(5), ga.WithGenerations(0))
	require.NoError(t, err)
	res, err := ev.Run()
	require.NoError(t, err)
	require.Len(t, res.History, 1)

	// Rebuild the same initial population from an identical stream.
	pop, err := ga.InitPopulation(10, inst.Len(), rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	var (
		want    knapsack.Candidate
		wantFit = -1
	)
	for _, c := range pop {
		fit, err := inst.Fitness(c)
		require.NoError(t, err)
		if fit > wantFit {
			want, wantFit = c, fit
		}
	}
	assert.Equal(t, want, res.Best)
	assert.Equal(t, wantFit, res.Fitness)
}

// TestRun_AllInfeasible exercises the zero-sum selection fallback every generation.
func TestRun_AllInfeasible(t *testing.T) {
	inst, err := knapsack.NewInstance([]knapsack.Item{{Weight: 10, Value: 5}, {Weight: 20, Value: 7}}, 5)
	require.NoError(t, err)
	ev, err := ga.New(inst, ga.WithSeed(seedDet), ga.WithGenerations(20))
	require.NoError(t, err)

	res, err := ev.Run()
	require.NoError(t, err)
	assert.Zero(t, res.Fitness)
	assert.Len(t, res.Best, 2)
	for _, s := range res.History {
		assert.Zero(t, s.Best)
	}
}

// TestRun_SingleItem runs with one gene, where crossover has no cut point.
func TestRun_SingleItem(t *testing.T) {
	inst, err := knapsack.NewInstance([]knapsack.Item{{Weight: 3, Value: 4}}, 3)
	require.NoError(t, err)
	ev, err := ga.New(inst, ga.WithSeed(seedDet), ga.WithGenerations(10))
	require.NoError(t, err)

	res, err := ev.Run()
	require.NoError(t, err)
	assert.Len(t, res.Best, 1)
	assert.LessOrEqual(t, res.Fitness, 4)
}

// TestRun_NoMutationKeepsGenePool checks that with rate 0 a gene absent from
// the whole initial population never appears.
func TestRun_NoMutationKeepsGenePool(t *testing.T) {
	inst := knapsack.DefaultInstance()
	// Intn always 0: every initial gene is 0, every spin and cut point minimal.
	ev, err := ga.New(inst, ga.WithRand(constFloat(0.5)), ga.WithMutationRate(0), ga.WithGenerations(5))
	require.NoError(t, err)

	res, err := ev.Run()
	require.NoError(t, err)
	assert.Equal(t, knapsack.Candidate{0, 0, 0}, res.Best)
	assert.Zero(t, res.Fitness)
}

// TestRun_Logging asserts the debug stream: one entry per evaluated population
// plus a summary.
func TestRun_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ev, err := ga.New(knapsack.DefaultInstance(),
		ga.WithSeed(seedDet),
		ga.WithGenerations(3),
		ga.WithLogger(zap.New(core)),
	)
	require.NoError(t, err)
	res, err := ev.Run()
	require.NoError(t, err)

	gens := logs.FilterMessage("generation evaluated").All()
	require.Len(t, gens, 4)
	for i, entry := range gens {
		assert.Equal(t, int64(i), entry.ContextMap()["generation"])
		assert.Equal(t, int64(10), entry.ContextMap()["size"])
	}

	done := logs.FilterMessage("evolution finished").All()
	require.Len(t, done, 1)
	assert.Equal(t, res.Best.String(), done[0].ContextMap()["best"])
	assert.Equal(t, int64(res.Fitness), done[0].ContextMap()["fitness"])
}

// TestRun_Repeatable checks an Evolver can run more than once.
func TestRun_Repeatable(t *testing.T) {
	ev, err := ga.New(knapsack.DefaultInstance(), ga.WithSeed(seedDet), ga.WithGenerations(10))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		res, err := ev.Run()
		require.NoError(t, err)
		require.Len(t, res.Best, 3)
		require.Len(t, res.History, 11)
	}
}
