// SPDX-License-Identifier: MIT

package xoshiro

import "gonum.org/v1/gonum/mathext/prng"

// splitMixState256 expands seed into four words with SplitMix64.
func splitMixState256(seed uint64) [4]uint64 {
	sm := prng.NewSplitMix64(seed)

	return [4]uint64{sm.Uint64(), sm.Uint64(), sm.Uint64(), sm.Uint64()}
}

// splitMixState128 splits two SplitMix64 words into four 32-bit words,
// high half first.
func splitMixState128(seed uint64) [4]uint32 {
	sm := prng.NewSplitMix64(seed)
	a, b := sm.Uint64(), sm.Uint64()

	return [4]uint32{uint32(a >> 32), uint32(a), uint32(b >> 32), uint32(b)}
}

// Seed256Plus returns a xoshiro256+ generator whose state is expanded from
// a single 64-bit seed. Any seed is accepted; ErrZeroState is only possible
// if SplitMix64 itself emits four zero words.
func Seed256Plus(seed uint64) (*Xoshiro256Plus, error) {
	return New256Plus(splitMixState256(seed))
}

// Seed256PlusPlus is Seed256Plus for xoshiro256++.
func Seed256PlusPlus(seed uint64) (*Xoshiro256PlusPlus, error) {
	return New256PlusPlus(splitMixState256(seed))
}

// Seed128Plus is Seed256Plus for xoshiro128+.
func Seed128Plus(seed uint64) (*Xoshiro128Plus, error) {
	return New128Plus(splitMixState128(seed))
}

// Seed128PlusPlus is Seed256Plus for xoshiro128++.
func Seed128PlusPlus(seed uint64) (*Xoshiro128PlusPlus, error) {
	return New128PlusPlus(splitMixState128(seed))
}
