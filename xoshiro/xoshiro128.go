// SPDX-License-Identifier: MIT

package xoshiro

import "math/bits"

// Xoshiro128Plus is xoshiro128+ 1.0, the 32-bit generator intended for
// float32 values. The lowest four bits have low linear complexity.
type Xoshiro128Plus struct {
	s [4]uint32
}

// New128Plus returns a xoshiro128+ generator with the given literal state.
// Returns ErrZeroState if every word is zero.
func New128Plus(state [4]uint32) (*Xoshiro128Plus, error) {
	if isZero128(state) {
		return nil, ErrZeroState
	}

	return &Xoshiro128Plus{s: state}, nil
}

// Uint32 returns the next raw word and advances the state.
func (x *Xoshiro128Plus) Uint32() uint32 {
	result := x.s[0] + x.s[3]
	advance128(&x.s)

	return result
}

// Jump is equivalent to 2^64 calls to Uint32.
func (x *Xoshiro128Plus) Jump() { jumpState128(&x.s, &jump128) }

// LongJump is equivalent to 2^96 calls to Uint32.
func (x *Xoshiro128Plus) LongJump() { jumpState128(&x.s, &longJump128) }

// State returns a copy of the current state.
func (x *Xoshiro128Plus) State() [4]uint32 { return x.s }

// Clone returns an independent generator with the same state.
func (x *Xoshiro128Plus) Clone() *Xoshiro128Plus {
	c := *x

	return &c
}

// Xoshiro128PlusPlus is xoshiro128++ 1.0.
type Xoshiro128PlusPlus struct {
	s [4]uint32
}

// New128PlusPlus returns a xoshiro128++ generator with the given literal state.
// Returns ErrZeroState if every word is zero.
func New128PlusPlus(state [4]uint32) (*Xoshiro128PlusPlus, error) {
	if isZero128(state) {
		return nil, ErrZeroState
	}

	return &Xoshiro128PlusPlus{s: state}, nil
}

// Uint32 returns the next raw word and advances the state.
func (x *Xoshiro128PlusPlus) Uint32() uint32 {
	result := bits.RotateLeft32(x.s[0]+x.s[3], outRotate32) + x.s[0]
	advance128(&x.s)

	return result
}

// Jump is equivalent to 2^64 calls to Uint32.
func (x *Xoshiro128PlusPlus) Jump() { jumpState128(&x.s, &jump128) }

// LongJump is equivalent to 2^96 calls to Uint32.
func (x *Xoshiro128PlusPlus) LongJump() { jumpState128(&x.s, &longJump128) }

// State returns a copy of the current state.
func (x *Xoshiro128PlusPlus) State() [4]uint32 { return x.s }

// Clone returns an independent generator with the same state.
func (x *Xoshiro128PlusPlus) Clone() *Xoshiro128PlusPlus {
	c := *x

	return &c
}

func advance128(s *[4]uint32) {
	t := s[1] << shift32

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]

	s[2] ^= t

	s[3] = bits.RotateLeft32(s[3], rotate32)
}

// jumpState128 is the 32-bit twin of jumpState256.
func jumpState128(s *[4]uint32, poly *[4]uint32) {
	var acc [4]uint32
	for _, word := range poly {
		for b := 0; b < 32; b++ {
			if word&(uint32(1)<<b) != 0 {
				acc[0] ^= s[0]
				acc[1] ^= s[1]
				acc[2] ^= s[2]
				acc[3] ^= s[3]
			}
			advance128(s)
		}
	}
	*s = acc
}

func isZero128(s [4]uint32) bool {
	return s[0]|s[1]|s[2]|s[3] == 0
}
