package util

import (
	"math/rand"
)

// RandomInt returns a random integer in range [0,n)
func RandomInt(n int) int {
	return rand.Intn(n)
}

// ShouldSample reports whether a request is kept under the given sampling
// rate. Rates >= 1 keep everything.
func ShouldSample(rate float64) bool {
	if rate >= 1.0 {
		return true
	}
	if rate <= 0 {
		return false
	}
	return float64(RandomInt(10000)+1)/10000 <= rate
}
