// SPDX-License-Identifier: MIT

package uniform

// Source64 produces raw 64-bit words.
type Source64 interface {
	Uint64() uint64
}

// Source32 produces raw 32-bit words.
type Source32 interface {
	Uint32() uint32
}

// Bounds selects which interval endpoints can be produced.
type Bounds int

const (
	// ClosedOpen samples [start, end).
	ClosedOpen Bounds = iota

	// OpenClosed samples (start, end].
	OpenClosed

	// OpenOpen samples (start, end).
	OpenOpen
)

// String implements fmt.Stringer.
func (b Bounds) String() string {
	switch b {
	case ClosedOpen:
		return "[start, end)"
	case OpenClosed:
		return "(start, end]"
	case OpenOpen:
		return "(start, end)"
	default:
		return "unknown"
	}
}

// Word and mantissa widths.
const (
	totalBits64       = 64
	significantBits64 = 53
	shift64           = totalBits64 - significantBits64

	totalBits32       = 32
	significantBits32 = 24
	shift32           = totalBits32 - significantBits32
)

// Float64 describes a uniform float64 distribution over an interval.
// It is a plain value with no state.
//
// Samples are computed as u·(End−Start)+Start. When |Start| is large
// compared to End−Start the sum can round up to End, so an open upper
// bound only holds while the interval is wide relative to the spacing of
// floats near Start. Callers that need an index clamp the result.
type Float64 struct {
	Start  float64
	End    float64
	Bounds Bounds
}

// Float32 describes a uniform float32 distribution over an interval.
type Float32 struct {
	Start  float32
	End    float32
	Bounds Bounds
}
