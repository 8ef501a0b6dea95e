// SPDX-License-Identifier: MIT

package ga

import (
	"fmt"
	"math"

	"github.com/katalvlaran/evolve/internal/population"
	"github.com/katalvlaran/evolve/problem"
	"github.com/katalvlaran/evolve/shuffle"
	"github.com/katalvlaran/evolve/uniform"
)

// GeneticAlgorithm minimizes φ of p and returns the best vector found.
//
// rng is advanced in place; pass a Clone to keep the caller's stream.
// The run is single-threaded and allocates two N×D populations up front.
func GeneticAlgorithm(rng uniform.Source64, p *problem.Problem, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if rng == nil {
		return Result{}, ErrNilRNG
	}
	if p == nil {
		return Result{}, ErrNilProblem
	}
	if err := p.Validate(); err != nil {
		return Result{}, fmt.Errorf("ga: %w", err)
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}

	n, d := o.PopulationSize, p.Dim()
	cur := population.New(n, d)
	next := population.New(n, d)

	if err := cur.Randomize(rng, p); err != nil {
		return Result{}, fmt.Errorf("ga: init: %w", err)
	}
	best := population.NewBest(d)
	for i := range cur.Genes {
		best.Observe(cur.Genes[i], cur.Fitness[i])
	}

	res := Result{
		InitialFitness: best.Fitness,
		History:        make([]float64, 0, o.Iterations+1),
		Evaluations:    n,
	}
	res.History = append(res.History, best.Fitness)

	pool := population.Indexes(n)
	for gen := 0; gen < o.Iterations; gen++ {
		// selection
		for i := range next.Genes {
			w := cur.ArgminOf(shuffle.Partial(rng, pool, o.TournamentSize))
			copy(next.Genes[i], cur.Genes[w])
		}

		recombine(rng, next.Genes, o.CrossoverProbability)
		mutate(rng, next.Genes, p.Ranges, o.MutationProbability)

		for i := range next.Genes {
			if err := next.Evaluate(p, i); err != nil {
				return Result{}, fmt.Errorf("ga: generation %d: %w", gen, err)
			}
			best.Observe(next.Genes[i], next.Fitness[i])
		}
		res.Evaluations += n

		cur, next = next, cur
		res.History = append(res.History, best.Fitness)
	}

	res.Best = best.Genes
	res.Fitness = best.Fitness

	return res, nil
}

// recombine runs the forward pairing scan over genes. The search for the
// second parent starts at the first parent's own index, so an individual
// can pair with itself; the scan resumes after the second parent.
func recombine(rng uniform.Source64, genes [][]float64, prob float64) {
	n := len(genes)
	for i := 0; i < n; i++ {
		if !(uniform.Unit64(rng) < prob) {
			continue
		}
		first := i
		for ; i < n; i++ {
			if uniform.Unit64(rng) < prob {
				blend(uniform.Unit64(rng), genes[first], genes[i])
				break
			}
		}
	}
}

// blend overwrites x and y with their arithmetic blends, both computed
// from the original values. When x and y are the same row, the second
// blend a·x+(1−a)·x is what remains.
func blend(a float64, x, y []float64) {
	b := 1 - a
	for j := range x {
		xj, yj := x[j], y[j]
		x[j] = float64(b*xj) + float64(a*yj)
		y[j] = float64(a*xj) + float64(b*yj)
	}
}

// mutate applies per-gene random reset within each dimension's range.
func mutate(rng uniform.Source64, genes [][]float64, ranges []problem.Range, prob float64) {
	for _, x := range genes {
		for j, r := range ranges {
			if uniform.Unit64(rng) < prob {
				x[j] = uniform.Range64(rng, r.Lo, r.Hi)
			}
		}
	}
}

func (o Options) validate() error {
	if o.Iterations < 0 {
		return fmt.Errorf("%w: got %d", ErrBadIterations, o.Iterations)
	}
	if o.PopulationSize < 1 {
		return fmt.Errorf("%w: got %d", ErrBadPopulationSize, o.PopulationSize)
	}
	if o.TournamentSize < 1 || o.TournamentSize > o.PopulationSize {
		return fmt.Errorf("%w: got %d with population %d", ErrBadTournamentSize, o.TournamentSize, o.PopulationSize)
	}
	if !isProbability(o.CrossoverProbability) {
		return fmt.Errorf("%w: crossover %g", ErrBadProbability, o.CrossoverProbability)
	}
	if !isProbability(o.MutationProbability) {
		return fmt.Errorf("%w: mutation %g", ErrBadProbability, o.MutationProbability)
	}

	return nil
}

func isProbability(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 1
}
