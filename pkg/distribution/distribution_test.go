package distribution

import (
	"math"
	"sort"
	"testing"

	"github.com/medxops/grand/pkg/mt19937"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// digitGenerator yields 0..9 over and over.
type digitGenerator struct{ next uint32 }

func (*digitGenerator) Min() uint32 { return 0 }
func (*digitGenerator) Max() uint32 { return 9 }
func (d *digitGenerator) Uint32() uint32 {
	v := d.next
	d.next = (d.next + 1) % 10
	return v
}

// offsetGenerator has a non-zero minimum.
type offsetGenerator struct{ e *mt19937.Engine }

func (offsetGenerator) Min() uint32 { return 100 }
func (offsetGenerator) Max() uint32 { return 1099 }
func (o offsetGenerator) Uint32() uint32 {
	return 100 + UniformInt(o.e, uint32(0), 999)
}

func TestUniformInt_ReferenceSequence(t *testing.T) {
	e := mt19937.New(7)
	got := []int{UniformInt(e, 0, 99), UniformInt(e, 0, 99), UniformInt(e, 0, 99)}
	assert.Equal(t, []int{7, 22, 77}, got)

	e = mt19937.New(42)
	var dice []int
	for i := 0; i < 5; i++ {
		dice = append(dice, UniformInt(e, 0, 5))
	}
	assert.Equal(t, []int{2, 4, 5, 1, 4}, dice)
}

func TestUniformInt_Ranges(t *testing.T) {
	e := mt19937.New(2024)
	for i := 0; i < 2000; i++ {
		v8 := UniformInt(e, int8(-100), int8(100))
		require.True(t, v8 >= -100 && v8 <= 100, "int8 %d", v8)

		u16 := UniformInt(e, uint16(10), uint16(20))
		require.True(t, u16 >= 10 && u16 <= 20, "uint16 %d", u16)

		i64 := UniformInt(e, int64(-1)<<40, int64(1)<<40)
		require.True(t, i64 >= -(1<<40) && i64 <= 1<<40, "int64 %d", i64)
	}
}

func TestUniformInt_FullWidthRanges(t *testing.T) {
	e := mt19937.New(1)
	seenHigh := false
	for i := 0; i < 200; i++ {
		v := UniformInt(e, uint64(0), math.MaxUint64)
		if v > math.MaxUint32 {
			seenHigh = true
		}
		w := UniformInt(e, uint32(0), math.MaxUint32)
		_ = w
		x := UniformInt(e, int64(math.MinInt64), int64(math.MaxInt64))
		_ = x
	}
	assert.True(t, seenHigh, "upscaling never produced a value above 32 bits")
}

func TestUniformInt_DegenerateRange(t *testing.T) {
	e := mt19937.New(1)
	assert.Equal(t, 5, UniformInt(e, 5, 5))
	assert.Equal(t, 9, UniformInt(e, 9, 3))
}

func TestUniformInt_SmallGeneratorBranches(t *testing.T) {
	d := &digitGenerator{}
	seen := map[int]bool{}
	for i := 0; i < 100; i++ {
		v := UniformInt(d, 0, 2)
		require.True(t, v >= 0 && v <= 2)
		seen[v] = true
	}
	assert.Len(t, seen, 3)

	// wider than the generator: recursive upscaling
	for i := 0; i < 200; i++ {
		v := UniformInt(d, 0, 123)
		require.True(t, v >= 0 && v <= 123)
	}

	// exactly the generator's range
	assert.Equal(t, 0, UniformInt(&digitGenerator{}, 0, 9))
}

func TestUniformInt_OffsetGenerator(t *testing.T) {
	g := offsetGenerator{e: mt19937.New(3)}
	for i := 0; i < 1000; i++ {
		v := UniformInt(g, 0, 49)
		require.True(t, v >= 0 && v <= 49)
	}

	seen := map[int]bool{}
	for i := 0; i < 5000; i++ {
		v := UniformInt(g, 0, 5000)
		require.True(t, v >= 0 && v <= 5000)
		seen[v] = true
	}
	assert.Greater(t, len(seen), 1000)
}

func TestUniformInt_ApproximatelyUniform(t *testing.T) {
	const (
		buckets = 10
		draws   = 100000
	)
	e := mt19937.New(31337)
	var counts [buckets]int
	for i := 0; i < draws; i++ {
		counts[UniformInt(e, 0, buckets-1)]++
	}
	expected := float64(draws) / buckets
	chi := 0.0
	for _, c := range counts {
		d := float64(c) - expected
		chi += d * d / expected
	}
	// 9 degrees of freedom, p = 0.001 critical value is 27.88.
	assert.Less(t, chi, 27.88)
}

func TestCanonical_Reference(t *testing.T) {
	e := mt19937.New(7)
	assert.Equal(t, 0.22733907496470684, Canonical(e))
	assert.Equal(t, 0.31897222781086315, Canonical(e))
	assert.Equal(t, 0.9782228962142042, Canonical(e))
}

func TestCanonical_ConsumesTwoWords(t *testing.T) {
	a := mt19937.New(11)
	b := mt19937.New(11)
	Canonical(a)
	b.Discard(2)
	assert.Equal(t, *b, *a)
}

func TestCanonical_Range(t *testing.T) {
	e := mt19937.New(5)
	for i := 0; i < 10000; i++ {
		v := Canonical(e)
		require.True(t, v >= 0 && v < 1, "%v", v)
	}
	d := &digitGenerator{}
	for i := 0; i < 100; i++ {
		v := Canonical(d)
		require.True(t, v >= 0 && v < 1, "%v", v)
	}
}

func TestUniformReal_Reference(t *testing.T) {
	e := mt19937.New(7)
	assert.Equal(t, 0.6820172248941205, UniformReal(e, 0, 3))
	assert.Equal(t, 0.9569166834325895, UniformReal(e, 0, 3))
}

func TestBernoulli(t *testing.T) {
	e := mt19937.New(9)
	trues := 0
	const draws = 20000
	for i := 0; i < draws; i++ {
		if Bernoulli(e, 0.25) {
			trues++
		}
	}
	assert.InDelta(t, 0.25, float64(trues)/draws, 0.02)

	before := *e
	assert.False(t, Bernoulli(e, 0))
	assert.NotEqual(t, before, *e)
}

func TestShuffle_IsPermutation(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 10, 101, 70000} {
		e := mt19937.New(uint32(n))
		xs := make([]int, n)
		for i := range xs {
			xs[i] = i
		}
		Shuffle(e, len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })

		sorted := append([]int(nil), xs...)
		sort.Ints(sorted)
		for i := range sorted {
			require.Equal(t, i, sorted[i], "n=%d", n)
		}
	}
}

func TestShuffle_Deterministic(t *testing.T) {
	shuffled := func() []string {
		xs := []string{"a", "b", "c", "d", "e", "f", "g"}
		Shuffle(mt19937.New(77), len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
		return xs
	}
	assert.Equal(t, shuffled(), shuffled())
}

func TestShuffle_SmallGenerator(t *testing.T) {
	d := &digitGenerator{}
	xs := []int{0, 1, 2, 3, 4, 5}
	Shuffle(d, len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5}, xs)
}
