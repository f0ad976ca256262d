package game

import "math"

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// wrapIndex maps any integer i onto 0..n-1. n must be positive.
func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// wrapUnit maps v onto [0, 1).
func wrapUnit(v float64) float64 {
	v -= math.Floor(v)
	if v >= 1 {
		return 0
	}
	return v
}

// onCadence reports whether frame n is a multiple of every (every > 0).
func onCadence(n uint64, every uint64) bool {
	return n%every == 0
}

func uniform(rng randSource, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// randSource is the subset of *rand.Rand the scene draws from.
type randSource interface {
	Float64() float64
}
