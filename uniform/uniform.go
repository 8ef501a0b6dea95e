// SPDX-License-Identifier: MIT

package uniform

// ---------- 64-bit word → float64 (53 significant bits) ----------

// Float64ClosedOpen maps w into [0, 1).
func Float64ClosedOpen(w uint64) float64 {
	return float64(w>>shift64) / (1 << significantBits64)
}

// Float64OpenClosed maps w into (0, 1].
func Float64OpenClosed(w uint64) float64 {
	return float64((w>>shift64)+1) / (1 << significantBits64)
}

// Float64OpenOpen maps w into (0, 1). Forcing the low bit keeps the
// numerator nonzero without reaching 2^53.
func Float64OpenOpen(w uint64) float64 {
	return float64((w>>shift64)|1) / (1 << significantBits64)
}

// ---------- 32-bit word → float32 (24 significant bits) ----------

// Float32ClosedOpen maps w into [0, 1).
func Float32ClosedOpen(w uint32) float32 {
	return float32(w>>shift32) / (1 << significantBits32)
}

// Float32OpenClosed maps w into (0, 1].
func Float32OpenClosed(w uint32) float32 {
	return float32((w>>shift32)+1) / (1 << significantBits32)
}

// Float32OpenOpen maps w into (0, 1).
func Float32OpenOpen(w uint32) float32 {
	return float32((w>>shift32)|1) / (1 << significantBits32)
}

// ---------- Interval distributions ----------

// FromWord maps a raw word into the distribution's interval.
// Unknown Bounds values behave like ClosedOpen.
func (d Float64) FromWord(w uint64) float64 {
	var u float64
	switch d.Bounds {
	case OpenClosed:
		u = Float64OpenClosed(w)
	case OpenOpen:
		u = Float64OpenOpen(w)
	default:
		u = Float64ClosedOpen(w)
	}

	// The conversion stops the compiler from fusing into an FMA, which would
	// round differently across platforms.
	return float64(u*(d.End-d.Start)) + d.Start
}

// Sample draws one word from src and maps it with FromWord.
func (d Float64) Sample(src Source64) float64 {
	return d.FromWord(src.Uint64())
}

// FromWord maps a raw word into the distribution's interval.
func (d Float32) FromWord(w uint32) float32 {
	var u float32
	switch d.Bounds {
	case OpenClosed:
		u = Float32OpenClosed(w)
	case OpenOpen:
		u = Float32OpenOpen(w)
	default:
		u = Float32ClosedOpen(w)
	}

	return float32(u*(d.End-d.Start)) + d.Start
}

// Sample draws one word from src and maps it with FromWord.
func (d Float32) Sample(src Source32) float32 {
	return d.FromWord(src.Uint32())
}

// ---------- Shorthands used by the search engines ----------

// Unit64 draws a closed-open unit sample, the probability test used by
// crossover and mutation.
func Unit64(src Source64) float64 {
	return Float64ClosedOpen(src.Uint64())
}

// Range64 draws from [start, end).
func Range64(src Source64, start, end float64) float64 {
	return Float64{Start: start, End: end}.Sample(src)
}

// Unit32 is the float32 counterpart of Unit64.
func Unit32(src Source32) float32 {
	return Float32ClosedOpen(src.Uint32())
}

// Range32 draws from [start, end) in single precision.
func Range32(src Source32, start, end float32) float32 {
	return Float32{Start: start, End: end}.Sample(src)
}
