package pricer

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/banachtech/optionmc/mc"
	"github.com/banachtech/optionmc/payoff"
)

// DefaultSeed seeds every pricer unless WithSeed overrides it, so
// reading Value twice on the same pricer returns the identical number.
const DefaultSeed uint64 = 1234567890

// Pricer values a European option contract by Monte Carlo simulation.
type Pricer interface {
	// Value runs a fresh simulation and returns the discounted
	// expected payoff. Nothing is cached between calls.
	Value() float64
	Describe() string
}

// MonteCarlo prices under plain geometric Brownian motion by sampling
// the terminal distribution directly.
type MonteCarlo struct {
	opt  mc.EuropeanOption
	par  mc.MCParams
	seed uint64
}

func NewMonteCarlo(o mc.EuropeanOption, par mc.MCParams) MonteCarlo {
	return MonteCarlo{opt: o, par: par, seed: DefaultSeed}
}

// WithSeed returns a copy of the pricer reseeded with seed.
func (p MonteCarlo) WithSeed(seed uint64) MonteCarlo {
	p.seed = seed
	return p
}

func (p MonteCarlo) Value() float64 {
	// the empty-input error is ruled out by MCParams validation
	v, _ := vanilla(p.opt).Value(mc.SampleTerminalPrices(p.opt, p.par, p.seed))
	return v
}

// Estimate returns the discounted expected payoff together with its
// Monte Carlo standard error.
func (p MonteCarlo) Estimate() (float64, float64) {
	return estimate(vanilla(p.opt), mc.SampleTerminalPrices(p.opt, p.par, p.seed))
}

func (p MonteCarlo) Describe() string { return p.opt.Describe() }

// JumpDiffusion prices under the Merton jump-diffusion model by
// simulating full price paths and reading the terminal row.
type JumpDiffusion struct {
	opt  mc.EuropeanOption
	par  mc.JumpParams
	seed uint64
}

func NewJumpDiffusion(o mc.EuropeanOption, par mc.JumpParams) JumpDiffusion {
	return JumpDiffusion{opt: o, par: par, seed: DefaultSeed}
}

// WithSeed returns a copy of the pricer reseeded with seed.
func (p JumpDiffusion) WithSeed(seed uint64) JumpDiffusion {
	p.seed = seed
	return p
}

func (p JumpDiffusion) Value() float64 {
	v, _ := vanilla(p.opt).Value(mc.TerminalPrices(mc.SimulatePaths(p.opt, p.par, p.seed)))
	return v
}

// Estimate returns the discounted expected payoff together with its
// Monte Carlo standard error.
func (p JumpDiffusion) Estimate() (float64, float64) {
	return estimate(vanilla(p.opt), mc.TerminalPrices(mc.SimulatePaths(p.opt, p.par, p.seed)))
}

func (p JumpDiffusion) Describe() string { return p.opt.Describe() }

func vanilla(o mc.EuropeanOption) payoff.Vanilla {
	return payoff.Vanilla{
		IsCall:   o.Type() == mc.Call,
		Strike:   o.Strike(),
		Rate:     o.Rate(),
		Maturity: o.Maturity(),
	}
}

func estimate(v payoff.Vanilla, terminal []float64) (float64, float64) {
	df := v.Discount()
	pay := v.Payouts(terminal)
	for i := range pay {
		pay[i] *= df
	}
	mean, _ := stats.Mean(pay)
	sd, _ := stats.StandardDeviationSample(pay)
	return mean, sd / math.Sqrt(float64(len(pay)))
}
