// SPDX-License-Identifier: MIT

package xoshiro

import "errors"

// ErrZeroState is returned when a generator is seeded with an all-zero state.
// Such a generator would only ever produce zeros.
var ErrZeroState = errors.New("xoshiro: state must not be all zero")

// Jumper is implemented by every generator in this package.
type Jumper interface {
	// Jump advances the state as if by 2^128 (64-bit) or 2^64 (32-bit) draws.
	Jump()

	// LongJump advances the state as if by 2^192 (64-bit) or 2^96 (32-bit) draws.
	LongJump()
}

// Source64 is a 64-bit generator that can be partitioned into streams.
// Both 64-bit variants satisfy it, and either can serve as a
// math/rand/v2.Source.
type Source64 interface {
	Jumper
	Uint64() uint64
}

// Source32 is the 32-bit counterpart of Source64.
type Source32 interface {
	Jumper
	Uint32() uint32
}

// Compile-time interface checks.
var (
	_ Source64 = (*Xoshiro256Plus)(nil)
	_ Source64 = (*Xoshiro256PlusPlus)(nil)
	_ Source32 = (*Xoshiro128Plus)(nil)
	_ Source32 = (*Xoshiro128PlusPlus)(nil)
)

// Shift and rotation amounts of the state transition.
const (
	shift64  = 17
	rotate64 = 45
	shift32  = 9
	rotate32 = 11

	// Output rotations of the ++ scramblers.
	outRotate64 = 23
	outRotate32 = 7
)

// Jump polynomials. They are generator-specific and must stay bit-exact.
var (
	jump256 = [4]uint64{
		0x180ec6d33cfd0aba,
		0xd5a61266f0c9392c,
		0xa9582618e03fc9aa,
		0x39abdc4529b1661c,
	}
	longJump256 = [4]uint64{
		0x76e15d3efefdcbbf,
		0xc5004e441c522fb3,
		0x77710069854ee241,
		0x39109bb02acbe635,
	}
	jump128     = [4]uint32{0x8764000b, 0xf542d2d3, 0x6fa035c3, 0x77f2db5b}
	longJump128 = [4]uint32{0xb523952e, 0x0b6f099f, 0xccf5a0ef, 0x1c580662}
)
