// Package prng implements the deterministic stream generator used by every
// content generator. The step function is SplitMix64: a single 64-bit state
// word advanced by a fixed odd constant, then avalanched. It is frozen:
// changing any constant would regenerate every world differently.
package prng

import "math"

const (
	stepIncrement = 0x9e3779b97f4a7c15
	stepMul1      = 0xbf58476d1ce4e5b9
	stepMul2      = 0x94d049bb133111eb

	// maxRejection bounds every rejection-sampling loop in this package.
	// On exhaustion the sampler falls back to a closed-form point, so a
	// stream can never spin forever.
	maxRejection = 64
)

// Stream is a deterministic pseudo-random stream. Two streams constructed
// from equal seeds produce bit-identical sequences indefinitely. A Stream is
// not safe for concurrent use; each goroutine constructs its own.
type Stream struct {
	state uint64
}

// New returns a stream seeded from a 64-bit seed.
func New(seed int64) *Stream {
	return &Stream{state: uint64(seed)}
}

// State returns the current state word for checkpointing.
func (s *Stream) State() uint64 { return s.state }

// Restore resumes a stream from a previously captured state word.
func (s *Stream) Restore(state uint64) { s.state = state }

// Uint64 advances the stream and returns the next raw value.
func (s *Stream) Uint64() uint64 {
	s.state += stepIncrement
	z := s.state
	z = (z ^ (z >> 30)) * stepMul1
	z = (z ^ (z >> 27)) * stepMul2
	return z ^ (z >> 31)
}

// Int63 returns a non-negative int64.
func (s *Stream) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Float64 returns the next value in [0,1), built from the top 53 bits.
func (s *Stream) Float64() float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}

// FloatRange returns a value in [min, max).
func (s *Stream) FloatRange(min, max float64) float64 {
	return min + s.Float64()*(max-min)
}

// IntRange returns a value in [min, max] inclusive. Callers must pass
// min <= max; an inverted range returns min (documented precondition, not a
// runtime error; generation code must never fail mid-stream).
func (s *Stream) IntRange(min, max int) int {
	if min >= max {
		return min
	}
	span := uint64(max-min) + 1
	return min + int(s.Uint64()%span)
}

// Chance returns true with probability p.
func (s *Stream) Chance(p float64) bool {
	return s.Float64() < p
}

// WeightedIndex rolls against a cumulative sum of weights and returns the
// selected index. Floating rounding that undershoots the total returns the
// last index rather than panicking. An empty slice returns -1.
func (s *Stream) WeightedIndex(weights []float64) int {
	if len(weights) == 0 {
		return -1
	}
	total := 0.0
	for _, w := range weights {
		total += w
	}
	roll := s.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if roll < acc {
			return i
		}
	}
	return len(weights) - 1
}

// Shuffle permutes n elements in place via Fisher-Yates.
func (s *Stream) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.IntRange(0, i)
		swap(i, j)
	}
}

// Pick returns a uniformly chosen index in [0, n). n must be positive.
func (s *Stream) Pick(n int) int {
	return s.IntRange(0, n-1)
}

// PickN returns k distinct indices in [0, n) by index-removal sampling.
// If k >= n every index is returned.
func (s *Stream) PickN(n, k int) []int {
	if k >= n {
		k = n
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	out := make([]int, 0, k)
	for len(out) < k {
		i := s.Pick(len(pool))
		out = append(out, pool[i])
		pool[i] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
	}
	return out
}

// InCircle returns a point uniformly inside a circle of the given radius via
// rejection sampling. Expected iterations ~1.27; after maxRejection attempts
// it falls back to a closed-form polar point.
func (s *Stream) InCircle(radius float64) (x, y float64) {
	for i := 0; i < maxRejection; i++ {
		px := s.FloatRange(-1, 1)
		py := s.FloatRange(-1, 1)
		if px*px+py*py <= 1 {
			return px * radius, py * radius
		}
	}
	angle := s.FloatRange(0, 2*math.Pi)
	r := math.Sqrt(s.Float64()) * radius
	return math.Cos(angle) * r, math.Sin(angle) * r
}

// InSphere returns a point uniformly inside a sphere of the given radius.
// Expected iterations ~1.91; same closed-form fallback policy as InCircle.
func (s *Stream) InSphere(radius float64) (x, y, z float64) {
	for i := 0; i < maxRejection; i++ {
		px := s.FloatRange(-1, 1)
		py := s.FloatRange(-1, 1)
		pz := s.FloatRange(-1, 1)
		if px*px+py*py+pz*pz <= 1 {
			return px * radius, py * radius, pz * radius
		}
	}
	dx, dy, dz := s.OnSphere()
	r := math.Cbrt(s.Float64()) * radius
	return dx * r, dy * r, dz * r
}

// OnSphere returns a unit direction uniformly distributed on the sphere,
// closed form (no rejection).
func (s *Stream) OnSphere() (x, y, z float64) {
	u := s.FloatRange(-1, 1)
	theta := s.FloatRange(0, 2*math.Pi)
	r := math.Sqrt(1 - u*u)
	return r * math.Cos(theta), r * math.Sin(theta), u
}

// Gaussian returns a normally distributed value via Box-Muller. The first
// uniform sample is clamped away from zero so log never sees 0.
func (s *Stream) Gaussian(mean, stddev float64) float64 {
	u1 := s.Float64()
	if u1 < 1e-12 {
		u1 = 1e-12
	}
	u2 := s.Float64()
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + z*stddev
}
