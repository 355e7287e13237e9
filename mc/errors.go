package mc

import "errors"

// Error kinds reported by the contract and parameter constructors. All
// validation happens eagerly at construction, so the samplers never
// fail at run time.
var (
	ErrInvalidOptionType      = errors.New("invalid option type")
	ErrUnknownModel           = errors.New("unknown pricing model")
	ErrInvalidParameter       = errors.New("invalid parameter")
	ErrInvalidSimulationCount = errors.New("invalid simulation count")
)
