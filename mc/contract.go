package mc

import "fmt"

type OptionType string

const (
	Call OptionType = "call"
	Put  OptionType = "put"
)

// Recognized pricing model tags.
const (
	BlackScholes  = "BlackScholes"
	MonteCarlo    = "MonteCarlo"
	BinomialTree  = "BinomialTree"
	JumpDiffusion = "JumpDiffusion"
)

// EuropeanOption holds the economic terms of a European call or put and
// the tag of the model it is priced under. Every field is validated by
// NewEuropeanOption and never changes afterwards.
type EuropeanOption struct {
	optType  OptionType
	spot     float64
	strike   float64
	maturity float64
	rate     float64
	dividend float64
	vol      float64
	model    string
}

// NewEuropeanOption validates the contract terms and returns the
// option. Maturity must be strictly positive, the remaining numeric
// fields non-negative.
func NewEuropeanOption(t OptionType, spot, strike, maturity, rate, dividend, vol float64, model string) (EuropeanOption, error) {
	switch t {
	case Call, Put:
	default:
		return EuropeanOption{}, fmt.Errorf("%w: %q", ErrInvalidOptionType, t)
	}
	switch model {
	case BlackScholes, MonteCarlo, BinomialTree, JumpDiffusion:
	default:
		return EuropeanOption{}, fmt.Errorf("%w: %q", ErrUnknownModel, model)
	}
	if spot < 0 {
		return EuropeanOption{}, fmt.Errorf("%w: spot = %v", ErrInvalidParameter, spot)
	}
	if strike < 0 {
		return EuropeanOption{}, fmt.Errorf("%w: strike = %v", ErrInvalidParameter, strike)
	}
	if maturity <= 0 {
		return EuropeanOption{}, fmt.Errorf("%w: maturity = %v", ErrInvalidParameter, maturity)
	}
	if rate < 0 {
		return EuropeanOption{}, fmt.Errorf("%w: rate = %v", ErrInvalidParameter, rate)
	}
	if dividend < 0 {
		return EuropeanOption{}, fmt.Errorf("%w: dividend = %v", ErrInvalidParameter, dividend)
	}
	if vol < 0 {
		return EuropeanOption{}, fmt.Errorf("%w: volatility = %v", ErrInvalidParameter, vol)
	}
	return EuropeanOption{
		optType:  t,
		spot:     spot,
		strike:   strike,
		maturity: maturity,
		rate:     rate,
		dividend: dividend,
		vol:      vol,
		model:    model,
	}, nil
}

func (o EuropeanOption) Type() OptionType  { return o.optType }
func (o EuropeanOption) Spot() float64     { return o.spot }
func (o EuropeanOption) Strike() float64   { return o.strike }
func (o EuropeanOption) Maturity() float64 { return o.maturity }
func (o EuropeanOption) Rate() float64     { return o.rate }
func (o EuropeanOption) Dividend() float64 { return o.dividend }
func (o EuropeanOption) Vol() float64      { return o.vol }

// Model returns the pricing model tag the contract was built with.
func (o EuropeanOption) Model() string { return o.model }

func (o EuropeanOption) Describe() string {
	return fmt.Sprintf("This EuropeanOption is priced using %s", o.model)
}
