// SPDX-License-Identifier: MIT

package ga

import "errors"

// Sentinel errors returned by GeneticAlgorithm.
var (
	// ErrNilRNG indicates that no random source was supplied.
	ErrNilRNG = errors.New("ga: random source is nil")

	// ErrNilProblem indicates that a nil *problem.Problem was passed.
	ErrNilProblem = errors.New("ga: problem is nil")

	// ErrBadIterations indicates a negative iteration count.
	ErrBadIterations = errors.New("ga: iterations must be non-negative")

	// ErrBadPopulationSize indicates a population smaller than one.
	ErrBadPopulationSize = errors.New("ga: population size must be positive")

	// ErrBadTournamentSize indicates a tournament outside [1, PopulationSize].
	ErrBadTournamentSize = errors.New("ga: tournament size must be in [1, population size]")

	// ErrBadProbability indicates a crossover or mutation probability that
	// is NaN or outside [0, 1].
	ErrBadProbability = errors.New("ga: probability must be in [0, 1]")
)

// Options configures GeneticAlgorithm.
//
// Iterations           – number of generations after initialization (≥ 0).
// PopulationSize       – N, individuals per generation (≥ 1).
// TournamentSize       – k, distinct contestants per selection, 1 ≤ k ≤ N.
// CrossoverProbability – per-index test in the recombination scan, [0, 1].
// MutationProbability  – per-gene random-reset probability, [0, 1].
type Options struct {
	Iterations           int
	PopulationSize       int
	TournamentSize       int
	CrossoverProbability float64
	MutationProbability  float64
}

// Option represents a functional option for configuring GeneticAlgorithm.
type Option func(*Options)

// WithIterations sets the number of generations.
func WithIterations(n int) Option {
	return func(o *Options) { o.Iterations = n }
}

// WithPopulationSize sets N.
func WithPopulationSize(n int) Option {
	return func(o *Options) { o.PopulationSize = n }
}

// WithTournamentSize sets k.
func WithTournamentSize(k int) Option {
	return func(o *Options) { o.TournamentSize = k }
}

// WithCrossoverProbability sets the crossover test probability.
func WithCrossoverProbability(p float64) Option {
	return func(o *Options) { o.CrossoverProbability = p }
}

// WithMutationProbability sets the per-gene mutation probability.
func WithMutationProbability(p float64) Option {
	return func(o *Options) { o.MutationProbability = p }
}

// WithOptions replaces all settings at once; useful when Options come
// from a config file.
func WithOptions(src Options) Option {
	return func(o *Options) { *o = src }
}

// DefaultOptions returns the settings used for the tubular column study:
// 1000 generations of 20 individuals, binary tournaments, crossover 0.9,
// mutation 0.2.
func DefaultOptions() Options {
	return Options{
		Iterations:           1000,
		PopulationSize:       20,
		TournamentSize:       2,
		CrossoverProbability: 0.9,
		MutationProbability:  0.2,
	}
}

// Result is the outcome of one GeneticAlgorithm run.
type Result struct {
	Best           []float64 // best vector ever evaluated
	Fitness        float64   // φ(Best)
	InitialFitness float64   // best φ of the initial population
	History        []float64 // best-so-far φ after init and after each generation
	Evaluations    int       // number of φ evaluations
}
