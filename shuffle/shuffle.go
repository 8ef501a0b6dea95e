// SPDX-License-Identifier: MIT

package shuffle

import "github.com/katalvlaran/evolve/uniform"

// Shuffle permutes a in place. Slices of length 0 or 1 are left untouched
// and consume no randomness.
func Shuffle[T any](src uniform.Source64, a []T) {
	n := len(a)
	if n <= 1 {
		return
	}

	var i, j int
	for i = 0; i < n-1; i++ {
		j = pick(src, i, n)
		a[i], a[j] = a[j], a[i]
	}
}

// Partial shuffles only the first k = min(amount, len(a)) positions and
// returns a[:k]. A non-positive amount returns an empty prefix.
func Partial[T any](src uniform.Source64, a []T, amount int) []T {
	n := len(a)
	k := amount
	if k > n {
		k = n
	}
	if k <= 0 {
		return a[:0]
	}

	var i, j int
	for i = 0; i < k; i++ {
		j = pick(src, i, n)
		a[i], a[j] = a[j], a[i]
	}

	return a[:k]
}

// Perm returns a random permutation of 0..n-1. For n <= 0 it returns an
// empty slice.
func Perm(src uniform.Source64, n int) []int {
	if n <= 0 {
		return []int{}
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	Shuffle(src, p)

	return p
}

// Intn draws an index from [0, n) using one 64-bit word. It panics if
// n <= 0.
func Intn(src uniform.Source64, n int) int {
	if n <= 0 {
		panic("shuffle: Intn with non-positive n")
	}

	return pick(src, 0, n)
}

// pick draws an index from [lo, n). The clamp guards against the float
// product rounding up to n.
func pick(src uniform.Source64, lo, n int) int {
	j := int(uniform.Range64(src, float64(lo), float64(n)))
	if j >= n {
		j = n - 1
	}

	return j
}
