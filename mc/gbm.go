package mc

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// SampleTerminalPrices draws one risk-neutral GBM terminal price per
// path. The GBM SDE integrates in closed form over a single step, so
// the terminal distribution is sampled exactly:
//
//	S_T = S0 * exp((r - q - sigma^2/2)*T + sigma*sqrt(T)*Z)
//
// The same seed reproduces the identical vector bit for bit.
func SampleTerminalPrices(o EuropeanOption, par MCParams, seed uint64) []float64 {
	d := distuv.Normal{Mu: 0.0, Sigma: 1.0, Src: rand.NewSource(seed)}
	// Pre compute the constant drift and diffusion terms
	a := (o.rate - o.dividend - 0.5*o.vol*o.vol) * o.maturity
	b := o.vol * math.Sqrt(o.maturity)
	out := make([]float64, par.paths)
	for i := range out {
		out[i] = o.spot * math.Exp(a+b*d.Rand())
	}
	return out
}
