// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/evolve/problem"
	"github.com/katalvlaran/evolve/xoshiro"
)

// Runner repeats an Algorithm on jump-separated streams.
type Runner struct {
	Runs    int
	Seed    [4]uint64
	Variant Variant // default Plus
	Stream  Stream  // default Jump
	Workers int     // <= 0 means GOMAXPROCS
	Logger  logrus.FieldLogger
}

// generator is the part of a xoshiro256 generator the runner needs.
type generator interface {
	xoshiro.Source64
	State() [4]uint64
}

func (r Runner) newGenerator(state [4]uint64) (generator, error) {
	switch r.Variant {
	case Plus, "":
		return xoshiro.New256Plus(state)
	case PlusPlus:
		return xoshiro.New256PlusPlus(state)
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadVariant, r.Variant)
	}
}

// streams derives one generator per run: run i gets the base state advanced
// by i jumps.
func (r Runner) streams() ([]generator, error) {
	base, err := r.newGenerator(r.Seed)
	if err != nil {
		return nil, fmt.Errorf("bench: seed: %w", err)
	}
	var advance func()
	switch r.Stream {
	case Jump, "":
		advance = base.Jump
	case LongJump:
		advance = base.LongJump
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadStream, r.Stream)
	}

	out := make([]generator, r.Runs)
	for i := range out {
		if out[i], err = r.newGenerator(base.State()); err != nil {
			return nil, err
		}
		advance()
	}

	return out, nil
}

func (r Runner) logger() logrus.FieldLogger {
	if r.Logger != nil {
		return r.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// Run executes algo r.Runs times on p and summarizes the results.
//
// Cancelling ctx stops scheduling further runs; runs already started finish
// and Run returns the context error.
func (r Runner) Run(ctx context.Context, algo Algorithm, p *problem.Problem) (Record, error) {
	if r.Runs < 1 {
		return Record{}, fmt.Errorf("%w: got %d", ErrBadRuns, r.Runs)
	}
	if algo.Solve == nil {
		return Record{}, ErrNilAlgorithm
	}
	if p == nil {
		return Record{}, ErrNilProblem
	}
	if err := p.Validate(); err != nil {
		return Record{}, fmt.Errorf("bench: %w", err)
	}
	gens, err := r.streams()
	if err != nil {
		return Record{}, err
	}

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	log := r.logger().WithFields(logrus.Fields{
		"algorithm": algo.Name,
		"problem":   p.Name,
	})

	rec := Record{
		Algorithm: algo.Name,
		Problem:   p.Name,
		Runs:      r.Runs,
		Values:    make([]float64, r.Runs),
		Fitness:   make([]float64, r.Runs),
		Feasible:  make([]bool, r.Runs),
	}
	points := make([][]float64, r.Runs)

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range gens {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			runStart := time.Now()
			x, err := algo.Solve(gens[i], p)
			if err != nil {
				return fmt.Errorf("bench: run %d: %w", i, err)
			}
			points[i] = x
			rec.Values[i] = p.Objective(x)
			rec.Fitness[i] = p.Phi(x)
			rec.Feasible[i] = p.Feasible(x)

			log.WithFields(logrus.Fields{
				"run":      i,
				"value":    rec.Values[i],
				"fitness":  rec.Fitness[i],
				"feasible": rec.Feasible[i],
				"elapsed":  time.Since(runStart),
			}).Debug("run finished")

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Record{}, err
	}
	if err := ctx.Err(); err != nil {
		return Record{}, fmt.Errorf("bench: %w", err)
	}
	rec.Elapsed = time.Since(start)

	rec.BestRun = 0
	for i := 1; i < r.Runs; i++ {
		if rec.Fitness[i] < rec.Fitness[rec.BestRun] {
			rec.BestRun = i
		}
	}
	rec.Best = points[rec.BestRun]
	rec.Stats = Summarize(rec.Values)

	log.WithFields(logrus.Fields{
		"runs":     r.Runs,
		"feasible": rec.FeasibleRuns(),
		"min":      rec.Stats.Min,
		"mean":     rec.Stats.Mean,
		"elapsed":  rec.Elapsed,
	}).Info("benchmark finished")

	return rec, nil
}
