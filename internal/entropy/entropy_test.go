package entropy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint32_Varies(t *testing.T) {
	seen := map[uint32]bool{}
	for i := 0; i < 16; i++ {
		seen[Uint32()] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestSeed64(t *testing.T) {
	a, err := Seed64()
	require.NoError(t, err)
	b, err := Seed64()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestFold(t *testing.T) {
	assert.Equal(t, uint32(0), fold(0))
	assert.Equal(t, uint32(3), fold(1<<32|2))
}
