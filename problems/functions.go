// SPDX-License-Identifier: MIT

package problems

import (
	"math"

	"github.com/katalvlaran/evolve/problem"
)

// Ackley constants.
const (
	ackleyA = 20.0
	ackleyB = 0.2
	ackleyC = 2 * math.Pi

	rastriginA = 10.0
)

// cube returns d copies of r.
func cube(d int, r problem.Range) []problem.Range {
	rs := make([]problem.Range, d)
	for i := range rs {
		rs[i] = r
	}

	return rs
}

func unconstrained(name string, d int, r problem.Range, f problem.Objective) *problem.Problem {
	return &problem.Problem{
		Name:          name,
		Objective:     f,
		Ranges:        cube(d, r),
		PenaltyWeight: DefaultPenaltyWeight,
	}
}

// Sphere returns Σ x² on [-100, 100]^d.
func Sphere(d int) *problem.Problem {
	return unconstrained(NameSphere, d, problem.Range{Lo: -100, Hi: 100}, SphereFunc)
}

// SphereFunc is the sphere objective.
func SphereFunc(x []float64) float64 {
	var s float64
	for _, xi := range x {
		s += float64(xi * xi)
	}

	return s
}

// Ackley returns the Ackley function on [-32.768, 32.768]^d.
func Ackley(d int) *problem.Problem {
	return unconstrained(NameAckley, d, problem.Range{Lo: -32.768, Hi: 32.768}, AckleyFunc)
}

// AckleyFunc is the Ackley objective with a=20, b=0.2, c=2π.
func AckleyFunc(x []float64) float64 {
	n := float64(len(x))
	var sq, cs float64
	for _, xi := range x {
		sq += float64(xi * xi)
		cs += math.Cos(ackleyC * xi)
	}

	return ackleyA + math.E -
		ackleyA*math.Exp(-ackleyB*math.Sqrt(sq/n)) -
		math.Exp(cs/n)
}

// Rastrigin returns the Rastrigin function on [-5.12, 5.12]^d.
func Rastrigin(d int) *problem.Problem {
	return unconstrained(NameRastrigin, d, problem.Range{Lo: -5.12, Hi: 5.12}, RastriginFunc)
}

// RastriginFunc is the Rastrigin objective with A=10.
func RastriginFunc(x []float64) float64 {
	s := rastriginA * float64(len(x))
	for _, xi := range x {
		s += xi*xi - rastriginA*math.Cos(2*math.Pi*xi)
	}

	return s
}

// StyblinskiTang returns the Styblinski–Tang function on [-5, 5]^d.
func StyblinskiTang(d int) *problem.Problem {
	return unconstrained(NameStyblinskiTang, d, problem.Range{Lo: -5, Hi: 5}, StyblinskiTangFunc)
}

// StyblinskiTangFunc is ½ Σ (x⁴ − 16x² + 5x).
func StyblinskiTangFunc(x []float64) float64 {
	var s float64
	for _, xi := range x {
		x2 := xi * xi
		s += x2*x2 - 16*x2 + 5*xi
	}

	return s / 2
}

// Himmelblau returns Himmelblau's function on [-5, 5]^2.
func Himmelblau() *problem.Problem {
	return unconstrained(NameHimmelblau, 2, problem.Range{Lo: -5, Hi: 5}, HimmelblauFunc)
}

// HimmelblauFunc is (x² + y − 11)² + (x + y² − 7)².
func HimmelblauFunc(v []float64) float64 {
	x, y := v[0], v[1]
	a := x*x + y - 11
	b := x + y*y - 7

	return a*a + b*b
}
