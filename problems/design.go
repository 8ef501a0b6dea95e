// SPDX-License-Identifier: MIT

package problems

import (
	"math"

	"github.com/katalvlaran/evolve/problem"
)

// TubularColumn is the uniform column design problem: choose the mean
// diameter d ∈ [2, 14] and wall thickness t ∈ [0.2, 0.8] minimizing
// material and construction cost 9.82·d·t + 2·d under stress and buckling
// limits.
func TubularColumn() *problem.Problem {
	return &problem.Problem{
		Name: NameTubularColumn,
		Objective: func(x []float64) float64 {
			d, t := x[0], x[1]

			return 9.82*d*t + 2*d
		},
		Ranges: []problem.Range{
			{Lo: 2, Hi: 14},
			{Lo: 0.2, Hi: 0.8},
		},
		Inequalities: []problem.Constraint{
			func(x []float64) float64 { return 5/(math.Pi*x[0]*x[1]) - 1 },
			func(x []float64) float64 {
				d, t := x[0], x[1]

				return 1/(6.8e-4*math.Pi*math.Pi*math.Pi*d*t*(d*d+t*t)) - 1
			},
			func(x []float64) float64 { return 2/x[0] - 1 },
			func(x []float64) float64 { return x[0]/14 - 1 },
			func(x []float64) float64 { return 0.2/x[1] - 1 },
			func(x []float64) float64 { return x[1]/0.8 - 1 },
		},
		PenaltyWeight: 1000,
	}
}

// TensionCompressionSpring minimizes the weight (n+2)·d·l² of a spring with
// wire diameter l, mean coil diameter d and n active coils, subject to
// deflection, shear stress, surge frequency and outer diameter limits.
func TensionCompressionSpring() *problem.Problem {
	return &problem.Problem{
		Name: NameSpring,
		Objective: func(x []float64) float64 {
			l, d, n := x[0], x[1], x[2]

			return (n + 2) * d * l * l
		},
		Ranges: []problem.Range{
			{Lo: 0.05, Hi: 2},
			{Lo: 0.25, Hi: 1.3},
			{Lo: 2, Hi: 15},
		},
		Inequalities: []problem.Constraint{
			func(x []float64) float64 {
				l, d, n := x[0], x[1], x[2]

				return 1 - (d*d*d*n)/(71785*l*l*l*l)
			},
			func(x []float64) float64 {
				l, d := x[0], x[1]

				return (4*d*d-l*d)/(12566*l*l*l*(d-l)) + 1/(5108*l*l) - 1
			},
			func(x []float64) float64 {
				l, d, n := x[0], x[1], x[2]

				return 1 - (140.45*l)/(d*d*n)
			},
			func(x []float64) float64 { return (x[0]+x[1])/1.5 - 1 },
		},
		PenaltyWeight: 100,
	}
}

// fmSamples is the number of intervals over one period in FMSound.
const fmSamples = 100

// FMSound fits the six parameters (a1, w1, a2, w2, a3, w3) of a nested
// frequency-modulated wave to the target wave with parameters
// (1, 5, −1.5, 4.8, 2, 4.9), as a sum of squared errors over 101 samples.
func FMSound() *problem.Problem {
	return &problem.Problem{
		Name:          NameFMSound,
		Objective:     FMSoundFunc,
		Ranges:        cube(6, problem.Range{Lo: -6.4, Hi: 6.35}),
		PenaltyWeight: 100,
	}
}

// FMSoundFunc is the FM sound objective.
func FMSoundFunc(x []float64) float64 {
	a1, w1, a2, w2, a3, w3 := x[0], x[1], x[2], x[3], x[4], x[5]
	var sum float64
	for i := 0; i <= fmSamples; i++ {
		t := float64(i) * 2 * math.Pi / fmSamples
		y := a1 * math.Sin(w1*t+a2*math.Sin(w2*t+a3*math.Sin(w3*t)))
		y0 := math.Sin(5*t - 1.5*math.Sin(4.8*t+2*math.Sin(4.9*t)))
		e := y - y0
		sum += e * e
	}

	return sum
}
