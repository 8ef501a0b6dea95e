// SPDX-License-Identifier: MIT

// Package population holds the flat, double-buffer friendly storage shared
// by the search engines: N individuals of D genes each plus their fitness.
package population

import (
	"fmt"

	"github.com/katalvlaran/evolve/problem"
	"github.com/katalvlaran/evolve/uniform"
)

// Population is a block of N individuals with D genes, backed by a single
// slice so that rows never alias across populations.
type Population struct {
	Genes   [][]float64 // Genes[i] is individual i, len D
	Fitness []float64   // Fitness[i] is φ(Genes[i])

	backing []float64
}

// New allocates a zeroed population of n individuals with d genes.
func New(n, d int) *Population {
	backing := make([]float64, n*d)
	genes := make([][]float64, n)
	for i := 0; i < n; i++ {
		genes[i] = backing[i*d : (i+1)*d : (i+1)*d]
	}

	return &Population{
		Genes:   genes,
		Fitness: make([]float64, n),
		backing: backing,
	}
}

// Len returns N.
func (p *Population) Len() int { return len(p.Genes) }

// Randomize fills every individual with genes drawn from [Lo, Hi) of the
// matching dimension and evaluates it. Individuals are completed one at a
// time, genes in dimension order, so the draw sequence is N·D words.
func (p *Population) Randomize(src uniform.Source64, prob *problem.Problem) error {
	var err error
	for i, x := range p.Genes {
		for j, r := range prob.Ranges {
			x[j] = uniform.Range64(src, r.Lo, r.Hi)
		}
		if p.Fitness[i], err = prob.Evaluate(x); err != nil {
			return fmt.Errorf("population: individual %d: %w", i, err)
		}
	}

	return nil
}

// Evaluate recomputes the fitness of individual i.
func (p *Population) Evaluate(prob *problem.Problem, i int) error {
	var err error
	if p.Fitness[i], err = prob.Evaluate(p.Genes[i]); err != nil {
		return fmt.Errorf("population: individual %d: %w", i, err)
	}

	return nil
}

// Argmin returns the index of the lowest fitness; ties go to the lowest
// index. It returns -1 for an empty population.
func (p *Population) Argmin() int {
	if len(p.Fitness) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(p.Fitness); i++ {
		if p.Fitness[i] < p.Fitness[best] {
			best = i
		}
	}

	return best
}

// ArgminOf returns the member of idx with the lowest fitness, first wins.
// idx must be non-empty.
func (p *Population) ArgminOf(idx []int) int {
	best := idx[0]
	for _, k := range idx[1:] {
		if p.Fitness[k] < p.Fitness[best] {
			best = k
		}
	}

	return best
}

// Indexes returns the identity pool 0..n-1.
func Indexes(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return idx
}

// Best is an elitist tracker held outside any population.
type Best struct {
	Genes   []float64
	Fitness float64
	set     bool
}

// NewBest returns an empty tracker for d-dimensional individuals.
func NewBest(d int) *Best {
	return &Best{Genes: make([]float64, d)}
}

// Observe records x when it is the first observation or strictly better
// than the current best. It reports whether x was taken.
func (b *Best) Observe(x []float64, fitness float64) bool {
	if b.set && !(fitness < b.Fitness) {
		return false
	}
	copy(b.Genes, x)
	b.Fitness = fitness
	b.set = true

	return true
}
