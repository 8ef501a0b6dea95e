// SPDX-License-Identifier: MIT

package problem

import (
	"fmt"
	"math"
)

// Dim returns the number of dimensions D.
func (p *Problem) Dim() int { return len(p.Ranges) }

// Validate checks the problem definition in a fixed order:
// nil → objective → dimensions → ranges → constraints → weight.
func (p *Problem) Validate() error {
	if p == nil {
		return ErrNilProblem
	}
	if p.Objective == nil {
		return ErrNilObjective
	}
	if len(p.Ranges) == 0 {
		return ErrNoDimensions
	}
	for j, r := range p.Ranges {
		if !isFinite(r.Lo) || !isFinite(r.Hi) || r.Lo > r.Hi {
			return fmt.Errorf("%w: dimension %d [%g, %g]", ErrBadRange, j, r.Lo, r.Hi)
		}
	}
	for k, g := range p.Inequalities {
		if g == nil {
			return fmt.Errorf("%w: index %d", ErrNilConstraint, k)
		}
	}
	if !isFinite(p.PenaltyWeight) || p.PenaltyWeight < 0 {
		return fmt.Errorf("%w: %g", ErrBadPenaltyWeight, p.PenaltyWeight)
	}

	return nil
}

// Evaluate returns the penalized fitness φ(x).
//
// Accumulation order is fixed: objective, then dimensions 0..D-1, then
// constraints in declaration order. A dimension below its lower bound is
// not checked against its upper bound.
//
// Errors:
//   - ErrDimensionMismatch if len(x) != D.
//   - ErrNaN (wrapped with its source) for a NaN objective, constraint or total.
//
// Complexity: O(D + K) plus the cost of the user functions.
func (p *Problem) Evaluate(x []float64) (float64, error) {
	if len(x) != len(p.Ranges) {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(x), len(p.Ranges))
	}

	y := p.Objective(x)
	if math.IsNaN(y) {
		return 0, fmt.Errorf("%w: objective", ErrNaN)
	}

	w := p.PenaltyWeight
	for j, r := range p.Ranges {
		if d := r.Lo - x[j]; d > 0 {
			y += float64(w * d)
			continue
		}
		if d := x[j] - r.Hi; d > 0 {
			y += float64(w * d)
		}
	}

	for k, g := range p.Inequalities {
		v := g(x)
		if math.IsNaN(v) {
			return 0, fmt.Errorf("%w: inequality %d", ErrNaN, k)
		}
		if v > 0 {
			y += float64(w * v)
		}
	}

	if math.IsNaN(y) {
		return 0, fmt.Errorf("%w: penalized total", ErrNaN)
	}

	return y, nil
}

// Phi is Evaluate without the error: it returns NaN where Evaluate fails.
// Useful for reporting; engines use Evaluate.
func (p *Problem) Phi(x []float64) float64 {
	y, err := p.Evaluate(x)
	if err != nil {
		return math.NaN()
	}

	return y
}

// Violation returns the unweighted constraint violation of x: the sum of
// box overshoots plus the positive inequality values. Zero means feasible.
// A vector of the wrong length is +Inf and is never passed to the
// constraints. NaN constraint values are ignored here; Evaluate reports them.
func (p *Problem) Violation(x []float64) float64 {
	if len(x) != len(p.Ranges) {
		return math.Inf(1)
	}

	var v float64
	for j, r := range p.Ranges {
		if d := r.Lo - x[j]; d > 0 {
			v += d
			continue
		}
		if d := x[j] - r.Hi; d > 0 {
			v += d
		}
	}
	for _, g := range p.Inequalities {
		if gv := g(x); gv > 0 {
			v += gv
		}
	}

	return v
}

// Feasible reports whether x has the right length and violates nothing.
func (p *Problem) Feasible(x []float64) bool {
	return p.Violation(x) == 0
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
