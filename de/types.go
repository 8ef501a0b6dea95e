// SPDX-License-Identifier: MIT

package de

import "errors"

// Sentinel errors returned by DifferentialEvolution.
var (
	// ErrNilRNG indicates that no random source was supplied.
	ErrNilRNG = errors.New("de: random source is nil")

	// ErrNilProblem indicates that a nil *problem.Problem was passed.
	ErrNilProblem = errors.New("de: problem is nil")

	// ErrBadIterations indicates a negative iteration count.
	ErrBadIterations = errors.New("de: iterations must be non-negative")

	// ErrBadPopulationSize indicates a population smaller than one.
	ErrBadPopulationSize = errors.New("de: population size must be positive")

	// ErrBadProbability indicates a crossover probability that is NaN or
	// outside [0, 1].
	ErrBadProbability = errors.New("de: crossover probability must be in [0, 1]")

	// ErrBadDifferentialWeight indicates a NaN or infinite F.
	ErrBadDifferentialWeight = errors.New("de: differential weight must be finite")
)

// Options configures DifferentialEvolution.
type Options struct {
	Iterations           int     // generations after initialization, ≥ 0
	PopulationSize       int     // N, ≥ 1
	CrossoverProbability float64 // CR, [0, 1]
	DifferentialWeight   float64 // F, finite
}

// Option represents a functional option for configuring DifferentialEvolution.
type Option func(*Options)

// WithIterations sets the number of generations.
func WithIterations(n int) Option {
	return func(o *Options) { o.Iterations = n }
}

// WithPopulationSize sets N.
func WithPopulationSize(n int) Option {
	return func(o *Options) { o.PopulationSize = n }
}

// WithCrossoverProbability sets CR.
func WithCrossoverProbability(p float64) Option {
	return func(o *Options) { o.CrossoverProbability = p }
}

// WithDifferentialWeight sets F.
func WithDifferentialWeight(f float64) Option {
	return func(o *Options) { o.DifferentialWeight = f }
}

// WithOptions replaces all settings at once.
func WithOptions(src Options) Option {
	return func(o *Options) { *o = src }
}

// DefaultOptions returns 1000 generations of 20 individuals with CR 0.9
// and F 0.8.
func DefaultOptions() Options {
	return Options{
		Iterations:           1000,
		PopulationSize:       20,
		CrossoverProbability: 0.9,
		DifferentialWeight:   0.8,
	}
}

// Result is the outcome of one DifferentialEvolution run.
type Result struct {
	Best        []float64 // lowest-fitness member of the final population
	Fitness     float64   // φ(Best)
	History     []float64 // population best after init and after each generation
	Evaluations int       // number of φ evaluations
}
