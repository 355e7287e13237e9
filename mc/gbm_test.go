package mc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/banachtech/optionmc/util"
)

func TestSampleTerminalPricesDeterminism(t *testing.T) {
	o, err := NewEuropeanOption(Call, util.RandomFloat(80, 120), 100, 1.0, 0.05, 0.01, 0.2, MonteCarlo)
	require.NoError(t, err)
	par, err := NewMCParams(5000)
	require.NoError(t, err)

	a := SampleTerminalPrices(o, par, 42)
	b := SampleTerminalPrices(o, par, 42)
	require.Len(t, a, 5000)
	require.Equal(t, a, b)

	c := SampleTerminalPrices(o, par, 43)
	require.NotEqual(t, a, c)
}

func TestSampleTerminalPricesZeroVol(t *testing.T) {
	// With zero volatility every path collapses onto the forward.
	o, err := NewEuropeanOption(Call, 100, 100, 2.0, 0.03, 0.01, 0.0, MonteCarlo)
	require.NoError(t, err)
	par, err := NewMCParams(100)
	require.NoError(t, err)

	want := 100 * math.Exp((0.03-0.01)*2.0)
	for _, s := range SampleTerminalPrices(o, par, 7) {
		require.InDelta(t, want, s, 1e-12)
	}
}

func TestSampleTerminalPricesMartingale(t *testing.T) {
	// E[S_T] = S0*exp((r-q)*T) within Monte Carlo standard error.
	o, err := NewEuropeanOption(Call, 100, 100, 1.0, 0.02, 0.0, 0.2, MonteCarlo)
	require.NoError(t, err)
	par, err := NewMCParams(200000)
	require.NoError(t, err)

	prices := SampleTerminalPrices(o, par, 2024)
	sum := 0.0
	for _, s := range prices {
		sum += s
	}
	mean := sum / float64(len(prices))
	require.InDelta(t, 100*math.Exp(0.02), mean, 0.5)
}
