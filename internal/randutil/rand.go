// Package randutil centralises how random sources are constructed so that
// shuffles are crypto-seeded in production and reproducible in tests.
package randutil

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand/v2"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// NewSeeded returns a *rand.Rand seeded deterministically from the provided
// int64. All call sites derive the two 64-bit PCG seeds the same way, so a
// seed always yields the same sequence.
func NewSeeded(seed int64) *mathrand.Rand {
	u := uint64(seed)
	return mathrand.New(mathrand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewCryptoSeeded returns a *rand.Rand whose PCG state is seeded from the
// operating system's entropy source. The generator itself is not
// cryptographic, but the permutation it produces is unpredictable across
// process runs, which is what a dealt hand needs.
func NewCryptoSeeded() *mathrand.Rand {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// If the OS entropy source fails we still have to deal a hand;
		// a mixed zero seed beats refusing to shuffle.
		return NewSeeded(0)
	}
	hi := binary.LittleEndian.Uint64(buf[0:8])
	lo := binary.LittleEndian.Uint64(buf[8:16])
	return mathrand.New(mathrand.NewPCG(hi, lo))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
