// SPDX-License-Identifier: MIT

// Package uniform turns raw generator words into uniformly distributed
// floating-point values.
//
// Construction:
//
//	A float64 has 53 significant bits, a float32 has 24. The top bits of a
//	raw word are kept (shift by 64−53 = 11 or 32−24 = 8) and divided by
//	2^53 or 2^24. The three endpoint policies differ only in the numerator:
//
//	  ClosedOpen  [0, 1):  (w >> shift)       / 2^bits
//	  OpenClosed  (0, 1]:  ((w >> shift) + 1) / 2^bits
//	  OpenOpen    (0, 1):  ((w >> shift) | 1) / 2^bits
//
//	Arbitrary intervals scale the unit value: u·(end − start) + start.
//
// The 64-bit and 32-bit kernels are written out separately on purpose: the
// shift and divisor are part of the numeric contract and an off-by-one in
// either changes the support of the distribution.
//
// Usage:
//
//	d := uniform.Float64{Start: -10, End: 10, Bounds: uniform.ClosedOpen}
//	x := d.Sample(rng) // rng is any uniform.Source64, e.g. *xoshiro.Xoshiro256Plus
package uniform
