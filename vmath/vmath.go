package vmath

import "math"

// --- Projection ---

// Floor projects a sub-cell coordinate onto its containing cell
func Floor(f float32) int {
	return int(math.Floor(float64(f)))
}

// SatSub returns a-b, or 0 when b exceeds a
// Grid dimensions are never allowed to go negative through subtraction
func SatSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}

// Clamp bounds v to [lo, hi]; lo wins when the range is inverted
func Clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Abs32 returns |x|
func Abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// --- Hashing ---

// Mix64 is the splitmix64 finalizer
func Mix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

// Hash folds three values into one well-mixed word
// Used wherever a per-tick decision must be reproducible without RNG state
func Hash(a, b, c uint64) uint64 {
	h := Mix64(a)
	h = Mix64(h ^ b)
	return Mix64(h ^ c)
}

// Unit maps a hash onto [-0.5, 0.5)
func Unit(h uint64) float32 {
	return float32(h>>40)/float32(1<<24) - 0.5
}

// Percent reports whether a hash lands in the lowest pct of [0, 100)
func Percent(h uint64, pct uint64) bool {
	return h%100 < pct
}
