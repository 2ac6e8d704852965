package vmath

// --- Randomness ---

// LCG constants (Knuth MMIX)
const (
	lcgMultiplier = 6364136223846793005
	lcgIncrement  = 1442695040888963407
)

// LCG is a seeded linear congruential generator for layout placement
// Same seed, same sequence; no call-time entropy
type LCG struct {
	state uint64
}

// NewLCG creates a generator from a seed; zero is a valid seed
func NewLCG(seed uint64) *LCG {
	return &LCG{state: seed}
}

// Next advances the state and returns its high 31 bits
func (g *LCG) Next() uint32 {
	g.state = g.state*lcgMultiplier + lcgIncrement
	return uint32(g.state >> 33)
}

// Range returns a value in [lo, hi]; hi < lo yields lo
func (g *LCG) Range(lo, hi int) int {
	v := g.Next()
	if hi <= lo {
		return lo
	}
	return lo + int(v%uint32(hi-lo+1))
}

// FastRand is a xorshift64 source for seeding scenes from a user seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float32Range returns a value in [lo, hi]
func (r *FastRand) Float32Range(lo, hi float32) float32 {
	f := float32(r.Next()>>40) / float32((1<<24)-1)
	return lo + f*(hi-lo)
}
