package util

import (
	"math/rand"
	"time"
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

// RandomInt generates a random integer between min and max
func RandomInt(min, max int32) int32 {
	return min + rand.Int31n(max-min+1)
}

// RandomFloat generates a random float64 between min and max
func RandomFloat(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

// RandomOptionType picks call or put with equal probability
func RandomOptionType() string {
	if rand.Intn(2) == 0 {
		return "call"
	}
	return "put"
}

// RandomSeed generates a nonzero simulation seed
func RandomSeed() uint64 {
	return rand.Uint64() | 1
}
