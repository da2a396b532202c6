package mt19937

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_DefaultSeedReference(t *testing.T) {
	e := New(DefaultSeed)
	assert.Equal(t, uint32(3499211612), e.Uint32())

	// The 10000th invocation of a default-constructed mt19937 is 4123659995.
	e = New(DefaultSeed)
	e.Discard(9999)
	assert.Equal(t, uint32(4123659995), e.Uint32())
}

func TestEngine_ZeroValueMatchesDefaultSeed(t *testing.T) {
	var zero Engine
	seeded := New(DefaultSeed)
	for i := 0; i < 1000; i++ {
		require.Equal(t, seeded.Uint32(), zero.Uint32(), "output %d", i)
	}
}

func TestEngine_SeedOne(t *testing.T) {
	e := New(1)
	want := []uint32{1791095845, 4282876139, 3093770124}
	for i, w := range want {
		assert.Equal(t, w, e.Uint32(), "output %d", i)
	}
}

func TestEngine_SeedSeven(t *testing.T) {
	e := New(7)
	want := []uint32{327741615, 976413892, 3349725721, 1369975286, 1882953283}
	for i, w := range want {
		assert.Equal(t, w, e.Uint32(), "output %d", i)
	}
}

func TestEngine_Reseed(t *testing.T) {
	e := New(99)
	first := []uint32{e.Uint32(), e.Uint32(), e.Uint32()}

	e.Discard(5000)
	e.Seed(99)
	again := []uint32{e.Uint32(), e.Uint32(), e.Uint32()}
	assert.Equal(t, first, again)
}

func TestEngine_CopyIsIndependent(t *testing.T) {
	e := New(123)
	e.Discard(10)
	cp := *e

	a := e.Uint32()
	b := cp.Uint32()
	assert.Equal(t, a, b)
	assert.Equal(t, *e, cp)
}

func TestEngine_Bounds(t *testing.T) {
	var e Engine
	assert.Equal(t, uint32(0), e.Min())
	assert.Equal(t, uint32(1<<32-1), e.Max())
}

func BenchmarkEngine_Uint32(b *testing.B) {
	e := New(DefaultSeed)
	for i := 0; i < b.N; i++ {
		e.Uint32()
	}
}
