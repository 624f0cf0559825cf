package srwr

import (
	"math"

	"github.com/pkg/errors"
)

const (
	// DefaultIterations is the number of rounds run in fixed-count mode
	DefaultIterations = 6
	// DefaultMaxIterations caps threshold mode
	DefaultMaxIterations = 1000
)

// Params is the signed random walk with restart parameters
// Damping is the probability the walker follows a link, restart probability is 1 - Damping
// Beta is the share of distrust-of-distrust that turns into trust
// Gamma is the share of distrust carried over a trust link that stays distrust
// Tolerance <= 0 selects fixed-count mode, otherwise it is the residual threshold
type Params struct {
	Damping       float64
	Beta          float64
	Gamma         float64
	Tolerance     float64
	Iterations    int // rounds in fixed-count mode
	MaxIterations int // safety cap in threshold mode
	Workers       int // > 1 splits each round across goroutines
}

// DefaultParams returns damping 0.85, beta = gamma = 0.5 and fixed-count mode.
func DefaultParams() Params {
	return Params{
		Damping:       0.85,
		Beta:          0.5,
		Gamma:         0.5,
		Tolerance:     -1,
		Iterations:    DefaultIterations,
		MaxIterations: DefaultMaxIterations,
		Workers:       1,
	}
}

// Threshold reports whether the params select threshold mode.
func (p Params) Threshold() bool {
	return p.Tolerance > 0
}

// Validate checks the parameter ranges.
func (p Params) Validate() error {
	// written so NaN fails every check
	if !(p.Damping > 0 && p.Damping < 1) {
		return errors.Wrapf(ErrInvalidParams, "damping %v not in (0, 1)", p.Damping)
	}
	if !(p.Beta >= 0 && p.Beta <= 1) {
		return errors.Wrapf(ErrInvalidParams, "beta %v not in [0, 1]", p.Beta)
	}
	if !(p.Gamma >= 0 && p.Gamma <= 1) {
		return errors.Wrapf(ErrInvalidParams, "gamma %v not in [0, 1]", p.Gamma)
	}
	if math.IsNaN(p.Tolerance) {
		return errors.Wrap(ErrInvalidParams, "tolerance is NaN")
	}
	if p.Threshold() {
		if p.MaxIterations < 1 {
			return errors.Wrapf(ErrInvalidParams, "max iterations %d < 1", p.MaxIterations)
		}
	} else if p.Iterations < 1 {
		return errors.Wrapf(ErrInvalidParams, "iterations %d < 1", p.Iterations)
	}
	if p.Workers < 0 {
		return errors.Wrapf(ErrInvalidParams, "workers %d < 0", p.Workers)
	}
	return nil
}
