package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomInt(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := RandomInt(5, 10)
		require.GreaterOrEqual(t, v, int32(5))
		require.LessOrEqual(t, v, int32(10))
	}
}

func TestRandomFloat(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := RandomFloat(50, 150)
		require.GreaterOrEqual(t, v, 50.0)
		require.Less(t, v, 150.0)
	}
}

func TestRandomOptionType(t *testing.T) {
	for i := 0; i < 100; i++ {
		require.Contains(t, []string{"call", "put"}, RandomOptionType())
	}
}

func TestRandomSeed(t *testing.T) {
	for i := 0; i < 100; i++ {
		require.NotZero(t, RandomSeed())
	}
}
