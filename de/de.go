// SPDX-License-Identifier: MIT

package de

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/evolve/internal/population"
	"github.com/katalvlaran/evolve/problem"
	"github.com/katalvlaran/evolve/shuffle"
	"github.com/katalvlaran/evolve/uniform"
)

// DifferentialEvolution minimizes φ of p and returns the best member of the
// final population.
//
// rng is advanced in place. Per generation it consumes N−1 words for the
// shuffle and N·(D+1) words for the trials.
func DifferentialEvolution(rng uniform.Source64, p *problem.Problem, opts ...Option) (Result, error) {
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
		return Result{}, fmt.Errorf("de: %w", err)
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}

	n, d := o.PopulationSize, p.Dim()
	pop := population.New(n, d)
	trials := population.New(n, d)

	if err := pop.Randomize(rng, p); err != nil {
		return Result{}, fmt.Errorf("de: init: %w", err)
	}

	res := Result{
		History:     make([]float64, 0, o.Iterations+1),
		Evaluations: n,
	}
	res.History = append(res.History, pop.Fitness[pop.Argmin()])

	pool := population.Indexes(n)
	for gen := 0; gen < o.Iterations; gen++ {
		shuffle.Shuffle(rng, pool)

		for i, target := range pop.Genes {
			a := pop.Genes[pool[i%n]]
			b := pop.Genes[pool[(i+1)%n]]
			c := pop.Genes[pool[(i+2)%n]]
			trial(rng, trials.Genes[i], target, a, b, c, o.CrossoverProbability, o.DifferentialWeight)

			if err := trials.Evaluate(p, i); err != nil {
				return Result{}, fmt.Errorf("de: generation %d: %w", gen, err)
			}
		}
		res.Evaluations += n

		for i := range pop.Genes {
			if trials.Fitness[i] < pop.Fitness[i] {
				copy(pop.Genes[i], trials.Genes[i])
				pop.Fitness[i] = trials.Fitness[i]
			}
		}
		res.History = append(res.History, pop.Fitness[pop.Argmin()])
	}

	best := pop.Argmin()
	res.Best = slices.Clone(pop.Genes[best])
	res.Fitness = pop.Fitness[best]

	return res, nil
}

// trial builds the binomial crossover of target with the mutant
// a + f·(b − c) into dst. It draws the forced dimension first, then one
// probability per gene, including the forced one.
func trial(rng uniform.Source64, dst, target, a, b, c []float64, cr, f float64) {
	r := shuffle.Intn(rng, len(dst))
	for j := range dst {
		if uniform.Unit64(rng) < cr || j == r {
			dst[j] = a[j] + float64(f*(b[j]-c[j]))
		} else {
			dst[j] = target[j]
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
	cr := o.CrossoverProbability
	if math.IsNaN(cr) || cr < 0 || cr > 1 {
		return fmt.Errorf("%w: got %g", ErrBadProbability, cr)
	}
	if math.IsNaN(o.DifferentialWeight) || math.IsInf(o.DifferentialWeight, 0) {
		return fmt.Errorf("%w: got %g", ErrBadDifferentialWeight, o.DifferentialWeight)
	}

	return nil
}
