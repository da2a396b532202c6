package grand

import (
	mathrand "math/rand"
	randv2 "math/rand/v2"

	"github.com/medxops/grand/pkg/distribution"
)

var (
	_ distribution.Generator = (*Source)(nil)
	_ randv2.Source          = (*Source)(nil)
	_ mathrand.Source64      = (*Source)(nil)
)

// Uint64 returns two consecutive engine words, the first in the high half.
// It makes a Source usable with math/rand/v2.New.
func (s *Source) Uint64() uint64 {
	hi := s.Uint32()
	lo := s.Uint32()
	return uint64(hi)<<32 | uint64(lo)
}

// Int63 returns a non-negative 63-bit integer for math/rand.New.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Shuffle pseudo-randomizes the order of n elements. swap swaps the
// elements with indexes i and j. The order of engine draws matches
// std::shuffle.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	distribution.Shuffle(s, n, swap)
}

// Shuffle pseudo-randomizes the order of xs in place.
func Shuffle[T any](s *Source, xs []T) {
	s.Shuffle(len(xs), func(i, j int) {
		xs[i], xs[j] = xs[j], xs[i]
	})
}

// Perm returns a pseudo-random permutation of the integers [0, n).
func Perm(s *Source, n int) []int {
	if n <= 0 {
		return []int{}
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	Shuffle(s, p)
	return p
}
