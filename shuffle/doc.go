// SPDX-License-Identifier: MIT

// Package shuffle provides Fisher–Yates shuffles driven by a 64-bit
// generator through the uniform sampler.
//
// Both forward-scanning variants draw j from [i, n) with the closed-open
// range sampler and truncate it to an index:
//
//	for i = 0 .. n-2:  j = ⌊U[i, n)⌋; swap(a[i], a[j])
//
//   - Shuffle  — full permutation of the slice.
//   - Partial  — stops after k = min(amount, n) positions and returns a[:k],
//     a uniformly random ordered k-subset. The tail keeps whatever order the
//     swaps left behind.
//
// Determinism: the same generator state always yields the same permutation,
// and Shuffle consumes exactly n−1 words (0 for n ≤ 1); Partial consumes k.
//
// Complexity: O(n) time for Shuffle, O(k) for Partial, O(1) extra space.
package shuffle
