package mc

import "fmt"

// Default simulation sizes used when a caller does not specify its own.
const (
	DefaultMCPaths   = 100000
	DefaultJumpPaths = 10000
	DefaultJumpSteps = 100
)

// MCParams sizes a plain Monte Carlo terminal simulation.
type MCParams struct {
	paths int
}

func NewMCParams(paths int) (MCParams, error) {
	if paths <= 0 {
		return MCParams{}, fmt.Errorf("%w: paths = %d", ErrInvalidSimulationCount, paths)
	}
	return MCParams{paths: paths}, nil
}

func (p MCParams) Paths() int { return p.paths }

// JumpParams holds the Merton jump component and the simulation grid.
// A zero intensity switches the jump component off.
type JumpParams struct {
	lambda float64
	mean   float64
	vol    float64
	steps  int
	paths  int
}

func NewJumpParams(lambda, mean, vol float64, steps, paths int) (JumpParams, error) {
	if lambda < 0 {
		return JumpParams{}, fmt.Errorf("%w: jump intensity = %v", ErrInvalidParameter, lambda)
	}
	if vol < 0 {
		return JumpParams{}, fmt.Errorf("%w: jump volatility = %v", ErrInvalidParameter, vol)
	}
	if steps <= 0 {
		return JumpParams{}, fmt.Errorf("%w: steps = %d", ErrInvalidSimulationCount, steps)
	}
	if paths <= 0 {
		return JumpParams{}, fmt.Errorf("%w: paths = %d", ErrInvalidSimulationCount, paths)
	}
	return JumpParams{lambda: lambda, mean: mean, vol: vol, steps: steps, paths: paths}, nil
}

// Intensity is the Poisson jump arrival rate per year.
func (p JumpParams) Intensity() float64 { return p.lambda }

// Mean is the mean log-jump size.
func (p JumpParams) Mean() float64 { return p.mean }

// Vol is the log-jump size volatility.
func (p JumpParams) Vol() float64 { return p.vol }

func (p JumpParams) Steps() int { return p.steps }
func (p JumpParams) Paths() int { return p.paths }
