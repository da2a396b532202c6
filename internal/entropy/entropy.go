// Package entropy provides unpredictable seeds for pseudo-random engines.
//
// Seeds are read from crypto/rand. Should the operating system fail to
// deliver random bytes, the wall clock is folded into a seed instead so
// that seeding never fails.
package entropy

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"time"
)

// Uint32 returns an unpredictable 32-bit seed.
func Uint32() uint32 {
	var b [4]byte
	if _, err := crand.Read(b[:]); err != nil {
		return fold(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint32(b[:])
}

// Seed64 generates a random 64-bit seed using crypto/rand.
func Seed64() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

func fold(v int64) uint32 {
	u := uint64(v)
	return uint32(u) ^ uint32(u>>32)
}
