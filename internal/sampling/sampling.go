// Package sampling implements the random draws used by action selection.
package sampling

import (
	"math/rand"
)

// Clamp restricts p to the range [0, 1].
func Clamp(p float64) float64 {
	if p < 0 {
		return 0
	} else if p > 1 {
		return 1
	}

	return p
}

// Explore returns true with probability p, clamped to [0, 1].
// The edge probabilities do not consume a draw from rng.
func Explore(rng *rand.Rand, p float64) bool {
	p = Clamp(p)
	if p == 0 {
		return false
	} else if p == 1 {
		return true
	}

	return rng.Float64() < p
}

// SampleOne returns an element of xs chosen uniformly at random.
// xs must not be empty.
func SampleOne(rng *rand.Rand, xs []int) int {
	if len(xs) == 1 {
		return xs[0]
	}

	return xs[rng.Intn(len(xs))]
}

// ArgMaxAll appends to dst the index of every element of values equal to
// the maximum, and returns the extended slice.
func ArgMaxAll(dst []int, values []float64) []int {
	if len(values) == 0 {
		return dst
	}

	best := values[0]
	for _, v := range values[1:] {
		if v > best {
			best = v
		}
	}

	for i, v := range values {
		if v == best {
			dst = append(dst, i)
		}
	}

	return dst
}
