package grand

import (
	"github.com/medxops/grand/internal/entropy"
	"github.com/medxops/grand/pkg/mt19937"
)

const (
	// MinWord is the smallest value returned by Uint32.
	MinWord uint32 = 0
	// MaxWord is the largest value returned by Uint32.
	MaxWord uint32 = 1<<32 - 1
)

type seedState uint8

const (
	// needsEntropy is the zero value so that a zero Source seeds itself.
	needsEntropy seedState = iota
	seeded
)

// Source is a pseudo-random number generator with lazy seeding. The zero
// value is ready to use and behaves like New().
type Source struct {
	state   seedState
	engine  mt19937.Engine
	entropy func() uint32
}

// Option configures a Source.
type Option func(*Source)

// WithEntropy replaces the function used to obtain unpredictable seeds.
func WithEntropy(f func() uint32) Option {
	return func(s *Source) {
		s.entropy = f
	}
}

// New returns a Source that will be seeded from system entropy when
// output is first requested.
func New(opts ...Option) *Source {
	s := &Source{state: needsEntropy}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSeeded returns a Source seeded with seed. Only the low 32 bits of
// seed are significant.
func NewSeeded(seed int64, opts ...Option) *Source {
	s := New(opts...)
	s.Seed(seed)
	return s
}

// Reseed arranges for the Source to be seeded from system entropy before
// its next output. No entropy is read until then.
func (s *Source) Reseed() {
	s.state = needsEntropy
}

// Seed seeds the Source with seed immediately. Only the low 32 bits of
// seed are significant.
func (s *Source) Seed(seed int64) {
	s.state = seeded
	s.engine.Seed(uint32(seed))
}

// Clone returns an independent copy of s with the same state.
func (s *Source) Clone() *Source {
	c := *s
	return &c
}

// Min returns MinWord.
func (*Source) Min() uint32 { return MinWord }

// Max returns MaxWord.
func (*Source) Max() uint32 { return MaxWord }

// Uint32 returns the next raw engine word, uniformly distributed over
// [MinWord, MaxWord].
func (s *Source) Uint32() uint32 {
	s.ensureSeeded()
	return s.engine.Uint32()
}

// ensureSeeded performs the pending entropy seed, if any.
func (s *Source) ensureSeeded() {
	if s.state != needsEntropy {
		return
	}
	s.state = seeded
	read := s.entropy
	if read == nil {
		read = entropy.Uint32
	}
	s.engine.Seed(read())
}
