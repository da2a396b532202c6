package distribution

import (
	"math"
	"math/bits"
)

// mantissaBits is the precision of float64.
const mantissaBits = 53

// Canonical returns a float64 in [0, 1) built from as many generator
// words as are needed to fill a float64 mantissa, in the manner of
// std::generate_canonical<double, 53>. A 32-bit generator consumes two
// words per call.
func Canonical(g Generator) float64 {
	words := uint64(g.Max()) - uint64(g.Min()) + 1
	log2r := uint(bits.Len64(words)) - 1
	if log2r == 0 {
		log2r = 1
	}
	k := (mantissaBits + log2r - 1) / log2r
	if k < 1 {
		k = 1
	}

	r := float64(words)
	sum := 0.0
	scale := 1.0
	for ; k > 0; k-- {
		sum += float64(g.Uint32()-g.Min()) * scale
		scale *= r
	}
	ret := sum / scale
	if ret >= 1 {
		ret = math.Nextafter(1, 0)
	}
	return ret
}

// UniformReal returns a float64 uniformly distributed over [a, b).
func UniformReal(g Generator, a, b float64) float64 {
	return Canonical(g)*(b-a) + a
}

// Bernoulli returns true with probability p. It consumes generator output
// even for p <= 0 or p >= 1.
func Bernoulli(g Generator, p float64) bool {
	return Canonical(g) < p
}
