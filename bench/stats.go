// SPDX-License-Identifier: MIT

package bench

import (
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summarize computes Stats over values. The standard deviation divides by
// n; the median of an even sample averages the two middle values. An empty
// sample yields the zero Stats.
func Summarize(values []float64) Stats {
	n := len(values)
	if n == 0 {
		return Stats{}
	}

	mean, std := values[0], 0.0
	if n > 1 {
		mean, std = stat.PopMeanStdDev(values, nil)
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)
	half := n / 2
	median := sorted[half]
	if n%2 == 0 {
		median = (sorted[half-1] + sorted[half]) / 2
	}

	return Stats{
		N:      n,
		Min:    floats.Min(values),
		Mean:   mean,
		Median: median,
		Max:    floats.Max(values),
		StdDev: std,
	}
}
