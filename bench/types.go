// SPDX-License-Identifier: MIT

package bench

import (
	"errors"
	"time"

	"github.com/katalvlaran/evolve/de"
	"github.com/katalvlaran/evolve/ga"
	"github.com/katalvlaran/evolve/problem"
	"github.com/katalvlaran/evolve/uniform"
)

// Sentinel errors returned by Runner.Run.
var (
	ErrBadRuns      = errors.New("bench: runs must be positive")
	ErrNilAlgorithm = errors.New("bench: algorithm has no solver")
	ErrNilProblem   = errors.New("bench: problem is nil")
	ErrBadVariant   = errors.New("bench: unknown generator variant")
	ErrBadStream    = errors.New("bench: unknown stream partitioning")
)

// Variant selects the 64-bit generator driving the runs.
type Variant string

const (
	Plus     Variant = "plus"     // xoshiro256+
	PlusPlus Variant = "plusplus" // xoshiro256++
)

// Stream selects how run streams are separated.
type Stream string

const (
	Jump     Stream = "jump"      // 2^128 draws apart
	LongJump Stream = "long-jump" // 2^192 draws apart
)

// Algorithm is a named search that maps a generator and a problem to a point.
type Algorithm struct {
	Name  string
	Solve func(rng uniform.Source64, p *problem.Problem) ([]float64, error)
}

// GA wraps ga.GeneticAlgorithm.
func GA(opts ...ga.Option) Algorithm {
	return Algorithm{
		Name: "ga",
		Solve: func(rng uniform.Source64, p *problem.Problem) ([]float64, error) {
			res, err := ga.GeneticAlgorithm(rng, p, opts...)

			return res.Best, err
		},
	}
}

// DE wraps de.DifferentialEvolution.
func DE(opts ...de.Option) Algorithm {
	return Algorithm{
		Name: "de",
		Solve: func(rng uniform.Source64, p *problem.Problem) ([]float64, error) {
			res, err := de.DifferentialEvolution(rng, p, opts...)

			return res.Best, err
		},
	}
}

// Stats summarize a sample of run values.
type Stats struct {
	N      int     `yaml:"n"`
	Min    float64 `yaml:"min"`
	Mean   float64 `yaml:"mean"`
	Median float64 `yaml:"median"`
	Max    float64 `yaml:"max"`
	StdDev float64 `yaml:"std_dev"`
}

// Record is the outcome of Runner.Run.
type Record struct {
	Algorithm string        `yaml:"algorithm"`
	Problem   string        `yaml:"problem"`
	Runs      int           `yaml:"runs"`
	Values    []float64     `yaml:"values"`   // raw objective per run
	Fitness   []float64     `yaml:"fitness"`  // penalized φ per run
	Feasible  []bool        `yaml:"feasible"` // per run
	BestRun   int           `yaml:"best_run"` // lowest φ, first on ties
	Best      []float64     `yaml:"best"`
	Stats     Stats         `yaml:"stats"`
	Elapsed   time.Duration `yaml:"elapsed"`
}

// FeasibleRuns counts the runs whose point violates nothing.
func (r Record) FeasibleRuns() int {
	n := 0
	for _, ok := range r.Feasible {
		if ok {
			n++
		}
	}

	return n
}
