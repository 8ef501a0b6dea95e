package bench_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evolve/bench"
	"github.com/katalvlaran/evolve/de"
	"github.com/katalvlaran/evolve/ga"
	"github.com/katalvlaran/evolve/problem"
	"github.com/katalvlaran/evolve/problems"
	"github.com/katalvlaran/evolve/uniform"
	"github.com/katalvlaran/evolve/xoshiro"
)

var seed = [4]uint64{
	0x93920339ac7730ac,
	0x8db68f4acc7c22b1,
	0x8b804df6a99a1289,
	0xff5fa2f037375aa9,
}

// firstWord is an Algorithm that returns the first word of its stream as a
// one-dimensional point.
var firstWord = bench.Algorithm{
	Name: "first-word",
	Solve: func(rng uniform.Source64, _ *problem.Problem) ([]float64, error) {
		return []float64{float64(rng.Uint64() >> 11)}, nil
	},
}

func identityProblem() *problem.Problem {
	return &problem.Problem{
		Name:          "identity",
		Objective:     func(x []float64) float64 { return x[0] },
		Ranges:        []problem.Range{{Lo: 0, Hi: 1 << 53}},
		PenaltyWeight: 1,
	}
}

func TestRunner_StreamPartitioning(t *testing.T) {
	cases := []struct {
		name    string
		variant bench.Variant
		stream  bench.Stream
	}{
		{"plus jump", bench.Plus, bench.Jump},
		{"plus long jump", bench.Plus, bench.LongJump},
		{"plusplus jump", bench.PlusPlus, bench.Jump},
		{"defaults", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := bench.Runner{Runs: 5, Seed: seed, Variant: tc.variant, Stream: tc.stream, Workers: 3}
			rec, err := r.Run(context.Background(), firstWord, identityProblem())
			require.NoError(t, err)

			var base xoshiro.Source64
			if tc.variant == bench.PlusPlus {
				base, err = xoshiro.New256PlusPlus(seed)
			} else {
				base, err = xoshiro.New256Plus(seed)
			}
			require.NoError(t, err)

			for i := 0; i < r.Runs; i++ {
				var want uint64
				switch tc.variant {
				case bench.PlusPlus:
					want = base.(*xoshiro.Xoshiro256PlusPlus).Clone().Uint64()
				default:
					want = base.(*xoshiro.Xoshiro256Plus).Clone().Uint64()
				}
				assert.Equal(t, float64(want>>11), rec.Values[i], "run %d", i)
				if tc.stream == bench.LongJump {
					base.LongJump()
				} else {
					base.Jump()
				}
			}
		})
	}
}

func TestRunner_WorkerCountIndependent(t *testing.T) {
	p := problems.Sphere(3)
	algo := bench.GA(ga.WithIterations(20), ga.WithTournamentSize(3))

	one, err := bench.Runner{Runs: 8, Seed: seed, Workers: 1}.Run(context.Background(), algo, p)
	require.NoError(t, err)
	four, err := bench.Runner{Runs: 8, Seed: seed, Workers: 4}.Run(context.Background(), algo, p)
	require.NoError(t, err)

	assert.Equal(t, one.Values, four.Values)
	assert.Equal(t, one.Fitness, four.Fitness)
	assert.Equal(t, one.Feasible, four.Feasible)
	assert.Equal(t, one.BestRun, four.BestRun)
	assert.Equal(t, one.Best, four.Best)
	assert.Equal(t, one.Stats, four.Stats)
}

func TestRunner_Record(t *testing.T) {
	p := problems.TubularColumn()
	rec, err := bench.Runner{Runs: 4, Seed: seed}.Run(context.Background(), bench.DE(de.WithIterations(50)), p)
	require.NoError(t, err)

	assert.Equal(t, "de", rec.Algorithm)
	assert.Equal(t, problems.NameTubularColumn, rec.Problem)
	assert.Equal(t, 4, rec.Runs)
	require.Len(t, rec.Values, 4)
	assert.Equal(t, 4, rec.Stats.N)
	assert.Equal(t, p.Objective(rec.Best), rec.Values[rec.BestRun])
	for i, f := range rec.Fitness {
		assert.GreaterOrEqual(t, f, rec.Fitness[rec.BestRun], "run %d", i)
		assert.GreaterOrEqual(t, f, rec.Values[i], "penalties are non-negative")
	}
	assert.LessOrEqual(t, rec.Stats.Min, rec.Stats.Median)
	assert.LessOrEqual(t, rec.Stats.Median, rec.Stats.Max)
}

func TestRunner_Logging(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	r := bench.Runner{Runs: 3, Seed: seed, Logger: logger}
	_, err := r.Run(context.Background(), firstWord, identityProblem())
	require.NoError(t, err)

	entries := hook.AllEntries()
	require.Len(t, entries, 4)
	debug := 0
	for _, e := range entries {
		assert.Equal(t, "first-word", e.Data["algorithm"])
		assert.Equal(t, "identity", e.Data["problem"])
		if e.Level == logrus.DebugLevel {
			debug++
		}
	}
	assert.Equal(t, 3, debug)
	assert.Equal(t, "benchmark finished", hook.LastEntry().Message)
}

func TestRunner_Errors(t *testing.T) {
	ctx := context.Background()
	p := identityProblem()

	_, err := bench.Runner{Runs: 0, Seed: seed}.Run(ctx, firstWord, p)
	assert.ErrorIs(t, err, bench.ErrBadRuns)

	_, err = bench.Runner{Runs: 1, Seed: seed}.Run(ctx, bench.Algorithm{Name: "none"}, p)
	assert.ErrorIs(t, err, bench.ErrNilAlgorithm)

	_, err = bench.Runner{Runs: 1, Seed: seed}.Run(ctx, firstWord, nil)
	assert.ErrorIs(t, err, bench.ErrNilProblem)

	_, err = bench.Runner{Runs: 1, Seed: seed}.Run(ctx, firstWord, &problem.Problem{Objective: p.Objective})
	assert.ErrorIs(t, err, problem.ErrNoDimensions)

	_, err = bench.Runner{Runs: 1}.Run(ctx, firstWord, p)
	assert.ErrorIs(t, err, xoshiro.ErrZeroState)

	_, err = bench.Runner{Runs: 1, Seed: seed, Variant: "plus128"}.Run(ctx, firstWord, p)
	assert.ErrorIs(t, err, bench.ErrBadVariant)

	_, err = bench.Runner{Runs: 1, Seed: seed, Stream: "skip"}.Run(ctx, firstWord, p)
	assert.ErrorIs(t, err, bench.ErrBadStream)

	boom := errors.New("boom")
	failing := bench.Algorithm{
		Name:  "failing",
		Solve: func(uniform.Source64, *problem.Problem) ([]float64, error) { return nil, boom },
	}
	_, err = bench.Runner{Runs: 3, Seed: seed, Workers: 2}.Run(ctx, failing, p)
	assert.ErrorIs(t, err, boom)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = bench.Runner{Runs: 3, Seed: seed}.Run(cancelled, firstWord, p)
	assert.ErrorIs(t, err, context.Canceled)
}
