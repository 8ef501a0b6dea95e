// SPDX-License-Identifier: MIT

package xoshiro

import "math/bits"

// Xoshiro256Plus is xoshiro256+ 1.0. Its upper 53 bits are the intended
// source for float64 values; the lowest three bits have low linear
// complexity.
type Xoshiro256Plus struct {
	s [4]uint64
}

// New256Plus returns a xoshiro256+ generator with the given literal state.
// Returns ErrZeroState if every word is zero.
func New256Plus(state [4]uint64) (*Xoshiro256Plus, error) {
	if isZero256(state) {
		return nil, ErrZeroState
	}

	return &Xoshiro256Plus{s: state}, nil
}

// Uint64 returns the next raw word and advances the state.
func (x *Xoshiro256Plus) Uint64() uint64 {
	result := x.s[0] + x.s[3]
	advance256(&x.s)

	return result
}

// Jump is equivalent to 2^128 calls to Uint64.
func (x *Xoshiro256Plus) Jump() { jumpState256(&x.s, &jump256) }

// LongJump is equivalent to 2^192 calls to Uint64.
func (x *Xoshiro256Plus) LongJump() { jumpState256(&x.s, &longJump256) }

// State returns a copy of the current state.
func (x *Xoshiro256Plus) State() [4]uint64 { return x.s }

// Clone returns an independent generator with the same state.
func (x *Xoshiro256Plus) Clone() *Xoshiro256Plus {
	c := *x

	return &c
}

// Xoshiro256PlusPlus is xoshiro256++ 1.0, the all-purpose 64-bit variant.
type Xoshiro256PlusPlus struct {
	s [4]uint64
}

// New256PlusPlus returns a xoshiro256++ generator with the given literal state.
// Returns ErrZeroState if every word is zero.
func New256PlusPlus(state [4]uint64) (*Xoshiro256PlusPlus, error) {
	if isZero256(state) {
		return nil, ErrZeroState
	}

	return &Xoshiro256PlusPlus{s: state}, nil
}

// Uint64 returns the next raw word and advances the state.
func (x *Xoshiro256PlusPlus) Uint64() uint64 {
	result := bits.RotateLeft64(x.s[0]+x.s[3], outRotate64) + x.s[0]
	advance256(&x.s)

	return result
}

// Jump is equivalent to 2^128 calls to Uint64.
func (x *Xoshiro256PlusPlus) Jump() { jumpState256(&x.s, &jump256) }

// LongJump is equivalent to 2^192 calls to Uint64.
func (x *Xoshiro256PlusPlus) LongJump() { jumpState256(&x.s, &longJump256) }

// State returns a copy of the current state.
func (x *Xoshiro256PlusPlus) State() [4]uint64 { return x.s }

// Clone returns an independent generator with the same state.
func (x *Xoshiro256PlusPlus) Clone() *Xoshiro256PlusPlus {
	c := *x

	return &c
}

// advance256 applies one state transition; shared by both 64-bit scramblers.
func advance256(s *[4]uint64) {
	t := s[1] << shift64

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]

	s[2] ^= t

	s[3] = bits.RotateLeft64(s[3], rotate64)
}

// jumpState256 replaces s with the xor of the states visited at the set
// bits of poly, scanning each word from the low bit up. The generator is
// advanced once per bit regardless of its value.
//
// Complexity: O(256) transitions.
func jumpState256(s *[4]uint64, poly *[4]uint64) {
	var acc [4]uint64
	for _, word := range poly {
		for b := 0; b < 64; b++ {
			if word&(uint64(1)<<b) != 0 {
				acc[0] ^= s[0]
				acc[1] ^= s[1]
				acc[2] ^= s[2]
				acc[3] ^= s[3]
			}
			advance256(s)
		}
	}
	*s = acc
}

func isZero256(s [4]uint64) bool {
	return s[0]|s[1]|s[2]|s[3] == 0
}
