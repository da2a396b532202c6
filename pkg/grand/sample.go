package grand

import (
	"math"

	"github.com/medxops/grand/pkg/distribution"
	"golang.org/x/exp/constraints"
)

// Sample returns an integer uniformly distributed over [0, n-1], or 0 if
// n <= 0.
func Sample[T constraints.Integer](s *Source, n T) T {
	s.ensureSeeded()
	if n <= 0 {
		return 0
	}
	return distribution.UniformInt(&s.engine, 0, n-1)
}

// Int returns an int uniformly distributed over [0, n-1], or 0 if n <= 0.
func (s *Source) Int(n int) int {
	return Sample(s, n)
}

// Bit returns 0 or 1 with equal probability.
func (s *Source) Bit() int {
	return s.Int(2)
}

// Double returns a float64 uniformly distributed over [0, bound) if
// bound > 0, over (bound, 0] if bound < 0, and exactly 0 if bound == 0.
// A zero bound consumes no engine output.
func (s *Source) Double(bound float64) float64 {
	s.ensureSeeded()
	switch {
	case bound > 0:
		v := distribution.UniformReal(&s.engine, 0, bound)
		if v >= bound {
			v = math.Nextafter(bound, 0)
		}
		return v
	case bound < 0:
		v := distribution.UniformReal(&s.engine, 0, -bound)
		if v >= -bound {
			v = math.Nextafter(-bound, 0)
		}
		return -v
	}
	return 0
}

// Float64 returns a float64 uniformly distributed over [0, 1).
func (s *Source) Float64() float64 {
	return s.Double(1)
}

// Bool returns true with probability p. Probabilities at or below 0 always
// give false and at or above 1 always give true, without consuming engine
// output.
func (s *Source) Bool(p float64) bool {
	s.ensureSeeded()
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return distribution.Bernoulli(&s.engine, p)
}

// Coin returns true or false with equal probability.
func (s *Source) Coin() bool {
	return s.Bool(0.5)
}
