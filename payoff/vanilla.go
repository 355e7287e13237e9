package payoff

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Vanilla evaluates discounted European call/put payoffs over a vector
// of simulated terminal prices. It holds no state and no randomness;
// pricing the same vector twice gives the same number.
type Vanilla struct {
	IsCall   bool
	Strike   float64
	Rate     float64
	Maturity float64
}

// Payout of a single terminal price.
func (v Vanilla) Payout(s float64) float64 {
	if v.IsCall {
		return math.Max(s-v.Strike, 0)
	}
	return math.Max(v.Strike-s, 0)
}

// Payouts maps terminal prices to undiscounted payoffs.
func (v Vanilla) Payouts(terminal []float64) []float64 {
	out := make([]float64, len(terminal))
	for i, s := range terminal {
		out[i] = v.Payout(s)
	}
	return out
}

// Discount is the risk-free discount factor to maturity.
func (v Vanilla) Discount() float64 {
	return math.Exp(-v.Rate * v.Maturity)
}

// Value reduces the terminal prices to the discounted expected payoff.
// It fails only on an empty price vector, which parameter validation
// rules out upstream.
func (v Vanilla) Value(terminal []float64) (float64, error) {
	if len(terminal) == 0 {
		return math.NaN(), errors.New("no terminal prices")
	}
	return v.Discount() * stat.Mean(v.Payouts(terminal), nil), nil
}
