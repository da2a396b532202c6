// Package mt19937 implements the 32-bit Mersenne Twister with the
// parameters of std::mt19937.
package mt19937

const (
	// StateSize is the number of 32-bit words of engine state.
	StateSize = 624
	// DefaultSeed is the seed used by the zero value.
	DefaultSeed uint32 = 5489

	shiftSize = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff
	initMult  = 1812433253
	temperB   = 0x9d2c5680
	temperC   = 0xefc60000
	minOutput = 0
	maxOutput = 1<<32 - 1
)

// Engine is a Mersenne Twister generator. The zero value behaves like an
// engine seeded with DefaultSeed. An Engine is not safe for concurrent use.
type Engine struct {
	state  [StateSize]uint32
	index  int
	inited bool
}

// New returns an engine seeded with seed.
func New(seed uint32) *Engine {
	e := &Engine{}
	e.Seed(seed)
	return e
}

// Seed resets the engine state from seed.
func (e *Engine) Seed(seed uint32) {
	e.state[0] = seed
	for i := 1; i < StateSize; i++ {
		prev := e.state[i-1]
		e.state[i] = initMult*(prev^(prev>>30)) + uint32(i)
	}
	e.index = StateSize
	e.inited = true
}

// Min returns the smallest value Uint32 can return.
func (*Engine) Min() uint32 { return minOutput }

// Max returns the largest value Uint32 can return.
func (*Engine) Max() uint32 { return maxOutput }

// Uint32 advances the engine and returns the next tempered word.
func (e *Engine) Uint32() uint32 {
	if !e.inited {
		e.Seed(DefaultSeed)
	}
	if e.index >= StateSize {
		e.twist()
	}
	y := e.state[e.index]
	e.index++

	y ^= y >> 11
	y ^= (y << 7) & temperB
	y ^= (y << 15) & temperC
	y ^= y >> 18
	return y
}

// Discard advances the engine by z steps.
func (e *Engine) Discard(z uint64) {
	for ; z > 0; z-- {
		e.Uint32()
	}
}

func (e *Engine) twist() {
	for i := 0; i < StateSize; i++ {
		y := (e.state[i] & upperMask) | (e.state[(i+1)%StateSize] & lowerMask)
		next := e.state[(i+shiftSize)%StateSize] ^ (y >> 1)
		if y&1 != 0 {
			next ^= matrixA
		}
		e.state[i] = next
	}
	e.index = 0
}
