// SPDX-License-Identifier: MIT

package problem

import "errors"

// Sentinel errors returned by Validate and Evaluate.
var (
	// ErrNilProblem indicates a nil *Problem.
	ErrNilProblem = errors.New("problem: problem is nil")

	// ErrNilObjective indicates that Objective is not set.
	ErrNilObjective = errors.New("problem: objective is nil")

	// ErrNoDimensions indicates an empty Ranges slice (D == 0).
	ErrNoDimensions = errors.New("problem: at least one dimension is required")

	// ErrBadRange indicates a non-finite bound or Lo > Hi.
	ErrBadRange = errors.New("problem: range bounds must be finite with lo <= hi")

	// ErrNilConstraint indicates a nil entry in Inequalities.
	ErrNilConstraint = errors.New("problem: inequality constraint is nil")

	// ErrBadPenaltyWeight indicates a negative, NaN or infinite weight.
	ErrBadPenaltyWeight = errors.New("problem: penalty weight must be finite and non-negative")

	// ErrDimensionMismatch indicates len(x) != D.
	ErrDimensionMismatch = errors.New("problem: vector length does not match dimension")

	// ErrNaN indicates that a fitness could not be ordered.
	ErrNaN = errors.New("problem: NaN fitness")
)

// Range is the closed interval [Lo, Hi] of legal values for one gene.
// Initial populations are sampled from [Lo, Hi).
type Range struct {
	Lo float64
	Hi float64
}

// Width returns Hi − Lo.
func (r Range) Width() float64 { return r.Hi - r.Lo }

// Contains reports whether Lo ≤ v ≤ Hi.
func (r Range) Contains(v float64) bool { return v >= r.Lo && v <= r.Hi }

// Objective is the function to minimize.
type Objective func(x []float64) float64

// Constraint is an inequality g(x) ≤ 0.
type Constraint func(x []float64) float64

// Problem is a constrained minimization problem. See the package comment
// for the penalized fitness definition.
type Problem struct {
	// Name is informational; used by reports and the benchmark registry.
	Name string

	Objective     Objective
	Ranges        []Range
	Inequalities  []Constraint
	PenaltyWeight float64
}
