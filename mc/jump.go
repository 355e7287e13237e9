package mc

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// SimulatePaths evolves M price paths over N time steps under the
// Merton jump-diffusion SDE and returns the (N+1)xM price matrix. Row 0
// is the spot; callers wanting only the terminal distribution read the
// last row. The drift is corrected by the jump compensator
// lambda*(exp(mean + vol^2/2) - 1) so the discounted price process
// stays a martingale under the risk-neutral measure.
//
// Per step the update is
//
//	S_t = S_{t-1} * (exp((r - jumpDrift - sigma^2/2)*dt + sigma*sqrt(dt)*Zd)
//	      + (exp(mean + vol*Zj) - 1) * K)
//
// where K is the Poisson jump count for the interval. K weights a
// single jump-return term linearly; K jumps in one interval are not
// compounded independently.
//
// Three streams are derived from the seed, one each for diffusion
// shocks, jump-size shocks and jump counts, drawn per step as three
// path-length vectors in that order. The same seed reproduces the
// identical matrix bit for bit.
func SimulatePaths(o EuropeanOption, par JumpParams, seed uint64) *mat.Dense {
	n, m := par.steps, par.paths
	dt := o.maturity / float64(n)
	jumpDrift := par.lambda * (math.Exp(par.mean+0.5*par.vol*par.vol) - 1.0)

	diff := distuv.Normal{Mu: 0.0, Sigma: 1.0, Src: rand.NewSource(seed)}
	size := distuv.Normal{Mu: 0.0, Sigma: 1.0, Src: rand.NewSource(seed + 1)}
	count := distuv.Poisson{Lambda: par.lambda * dt, Src: rand.NewSource(seed + 2)}

	paths := mat.NewDense(n+1, m, nil)
	s0 := paths.RawRowView(0)
	for j := range s0 {
		s0[j] = o.spot
	}

	// Pre compute the constant drift and diffusion terms
	a := (o.rate - jumpDrift - 0.5*o.vol*o.vol) * dt
	b := o.vol * math.Sqrt(dt)

	zd := make([]float64, m)
	zj := make([]float64, m)
	k := make([]float64, m)
	for t := 1; t <= n; t++ {
		for j := 0; j < m; j++ {
			zd[j] = diff.Rand()
		}
		for j := 0; j < m; j++ {
			zj[j] = size.Rand()
		}
		for j := 0; j < m; j++ {
			k[j] = 0.0
			if par.lambda > 0 {
				k[j] = count.Rand()
			}
		}
		prev := paths.RawRowView(t - 1)
		cur := paths.RawRowView(t)
		for j := 0; j < m; j++ {
			cur[j] = prev[j] * (math.Exp(a+b*zd[j]) + (math.Exp(par.mean+par.vol*zj[j])-1.0)*k[j])
		}
	}
	return paths
}

// TerminalPrices returns the last row of a simulated price matrix, the
// prices at option maturity.
func TerminalPrices(paths *mat.Dense) []float64 {
	r, _ := paths.Dims()
	return paths.RawRowView(r - 1)
}
