package game

import (
	"math/rand"
	"time"
)

// Rand is the subset of math/rand the engine and the alien policy draw
// from. *rand.Rand satisfies it; tests inject scripted sequences to pin
// down otherwise-randomized decisions.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

func defaultRand(rng Rand) Rand {
	if rng == nil {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rng
}
