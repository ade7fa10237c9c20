package sampling

import (
	"crypto/rand"
	"encoding/binary"
)

// RandUint64 returns a random value between 0 and 0xFFFFFFFFFFFFFFFF.
func RandUint64() uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// RandFloat64 returns a random float between min and max.
func RandFloat64(min, max float64) float64 {
	return min + float64(RandUint64())/1.8446744073709552e+19*(max-min)
}

// Uint64From reads a uint64 from the given PRNG.
func Uint64From(prng PRNG) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// Float64From reads a float between min and max from the given PRNG.
func Float64From(prng PRNG, min, max float64) float64 {
	f := float64(Uint64From(prng)) / 1.8446744073709552e+19
	return min + f*(max-min)
}
