package selection

// HashString is a djb2-style rolling hash over the string's code points with
// wrapping 32-bit signed arithmetic, returning the absolute value widened to
// int64. The 32-bit wraparound must be preserved exactly for cross-platform
// seed reproducibility.
func HashString(s string) int64 {
	h := int32(5381)
	for _, r := range s {
		h = (h << 5) + h + int32(r)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

// SeedFor derives the per-song generator seed. A show seed of zero is the
// default when none is configured.
func SeedFor(trackID string, showSeed int64) int64 {
	return HashString(trackID) + showSeed
}

// Rand is a Park-Miller linear congruential generator. State mutates in
// place on every draw; callers needing reproducibility must create one
// generator per selection call and never share it.
type Rand struct {
	state int64
}

// NewRand creates a generator with the given seed as its initial state.
func NewRand(seed int64) *Rand {
	return &Rand{state: seed}
}

// Next advances the generator and returns a float in [0,1).
func (r *Rand) Next() float64 {
	r.state = r.state * 16807 % 2147483647
	return float64(r.state-1) / 2147483646
}
