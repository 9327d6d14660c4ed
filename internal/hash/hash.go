// Package hash provides the deterministic integer-mixing primitives that
// every other generation layer builds on. All arithmetic is unsigned 64-bit
// with natural wraparound; results are identical on every platform.
package hash

import (
	"fmt"
	"math"
)

const (
	// golden is 2^64 / phi, the usual odd increment for decorrelating inputs.
	golden = 0x9e3779b97f4a7c15

	fmix1 = 0xff51afd7ed558ccd
	fmix2 = 0xc4ceb9fe1a85ec53
)

// Mix folds one 64-bit value into the running state. It is deliberately
// cheap; Finalize provides the avalanche at the end of a fold.
func Mix(state, value uint64) uint64 {
	return (state ^ value*golden) * fmix1
}

// Finalize avalanches the accumulated state (murmur-style fmix64) so that
// every input bit affects every output bit.
func Finalize(state uint64) uint64 {
	state ^= state >> 33
	state *= fmix1
	state ^= state >> 33
	state *= fmix2
	state ^= state >> 33
	return state
}

// Combine folds a heterogeneous list of values into the given seed and
// finalizes the result. Strings are hashed over their raw UTF-8 bytes, never
// via the runtime map hash, so output is stable across builds. Floats are
// folded by their IEEE-754 bit patterns. A value of any other type folds the
// bytes of its fmt representation; generation never fails mid-stream.
func Combine(seed int64, parts ...any) int64 {
	state := uint64(seed)
	for _, part := range parts {
		switch v := part.(type) {
		case int:
			state = Mix(state, uint64(int64(v)))
		case int32:
			state = Mix(state, uint64(int64(v)))
		case int64:
			state = Mix(state, uint64(v))
		case uint32:
			state = Mix(state, uint64(v))
		case uint64:
			state = Mix(state, v)
		case float32:
			state = Mix(state, uint64(math.Float32bits(v)))
		case float64:
			state = Mix(state, math.Float64bits(v))
		case string:
			state = mixString(state, v)
		case bool:
			if v {
				state = Mix(state, 1)
			} else {
				state = Mix(state, 0)
			}
		default:
			state = mixString(state, fmt.Sprintf("%v", part))
		}
	}
	return int64(Finalize(state))
}

func mixString(state uint64, s string) uint64 {
	// Iterating bytes (not runes) keeps the fold encoding-explicit.
	for i := 0; i < len(s); i++ {
		state = Mix(state, uint64(s[i]))
	}
	// Length guard so "ab","c" and "a","bc" cannot collide.
	return Mix(state, uint64(len(s)))
}

// ToFloat maps a hash into [0,1) using its top 53 bits, so the sign bit of
// the int64 representation never skews the distribution.
func ToFloat(h int64) float64 {
	return float64(uint64(h)>>11) / (1 << 53)
}

// ToFloatRange maps a hash into [min, max).
func ToFloatRange(h int64, min, max float64) float64 {
	return min + ToFloat(h)*(max-min)
}

// ToIntRange maps a hash into [min, max] inclusive. min must not exceed max.
func ToIntRange(h int64, min, max int) int {
	if min >= max {
		return min
	}
	span := uint64(max-min) + 1
	return min + int(uint64(h)%span)
}
