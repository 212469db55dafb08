package utils

import (
	"math/rand"
)

// RandomFloat returns a random float64 in [0.0, 1.0)
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// RandomIntn returns a random integer in [0, n). Non-positive n yields 0.
func RandomIntn(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.Intn(n) //nolint:gosec // Game logic randomness, not security critical
}

// Source bundles the two draw shapes used by the rollers. Services take a
// Source so tests can script every draw.
type Source struct {
	Float func() float64
	Intn  func(int) int
}

// DefaultSource draws from the process-wide math/rand generator.
func DefaultSource() Source {
	return Source{Float: RandomFloat, Intn: RandomIntn}
}

// SeededSource returns a reproducible Source. A zero seed falls back to
// DefaultSource.
func SeededSource(seed int64) Source {
	if seed == 0 {
		return DefaultSource()
	}
	r := rand.New(rand.NewSource(seed)) //nolint:gosec // Game logic randomness, not security critical
	return Source{
		Float: r.Float64,
		Intn: func(n int) int {
			if n <= 0 {
				return 0
			}
			return r.Intn(n)
		},
	}
}
