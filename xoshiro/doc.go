// SPDX-License-Identifier: MIT

// Package xoshiro implements the xoshiro family of pseudorandom generators
// with bit-exact output and jump-based stream partitioning.
//
// 🚀 What is xoshiro?
//
//	xoshiro ("xor/shift/rotate") generators keep four machine words of state
//	and mix them with a handful of xor, shift and rotate operations.
//	They are small, fast and have well-studied statistical behavior.
//
// ✨ Variants:
//   - Xoshiro256Plus      — 4×64-bit state, output s0+s3, best for float64 sampling.
//   - Xoshiro256PlusPlus  — 4×64-bit state, output rotl(s0+s3, 23)+s0, all-purpose.
//   - Xoshiro128Plus      — 4×32-bit state, output s0+s3, best for float32 sampling.
//   - Xoshiro128PlusPlus  — 4×32-bit state, output rotl(s0+s3, 7)+s0.
//
// Stream partitioning:
//
//	Jump advances a generator by 2^128 draws (2^64 for the 32-bit variants),
//	LongJump by 2^192 (2^96). Applying Jump i times to a common seed yields
//	the i-th of many non-overlapping subsequences, which is how independent
//	parallel runs are decorrelated without extra state.
//
// Seeding:
//
//	The state must never be all zero; the New* constructors reject it with
//	ErrZeroState. Seed* constructors expand a single 64-bit seed through
//	SplitMix64 as recommended by the generator authors.
//
// Concurrency:
//
//	Generators are NOT goroutine-safe. Give each goroutine its own generator
//	(Clone + Jump) instead of sharing one.
//
// Non-goal: cryptographic security.
//
// Usage:
//
//	rng, err := xoshiro.New256Plus([4]uint64{1, 2, 3, 4})
//	if err != nil {
//	  // all-zero state
//	}
//	w := rng.Uint64()
//	worker := rng.Clone()
//	worker.Jump() // independent stream
package xoshiro
