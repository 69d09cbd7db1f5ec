package utils

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// Rand is the subset of a random source the players and the agent draw from.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a fast random source. A zero seed draws entropy from the
// system; any other seed yields a reproducible stream.
func NewRand(seed uint64) Rand {
	if seed == 0 {
		return frand.New()
	}
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, seed)
	return frand.NewCustom(key, 1024, 12)
}
