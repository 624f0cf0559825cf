package detsrwr

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"

	"github.com/relevant-community/signedrank/srwr"
)

// Params is the fixed point twin of srwr.Params
// Tolerance that is not positive selects fixed-count mode
type Params struct {
	Damping       sdk.Dec
	Beta          sdk.Dec
	Gamma         sdk.Dec
	Tolerance     sdk.Dec
	Iterations    int
	MaxIterations int
}

// DefaultParams returns damping 0.85, beta = gamma = 0.5 and fixed-count mode
func DefaultParams() Params {
	return Params{
		Damping:       sdk.NewDecWithPrec(85, 2),
		Beta:          sdk.NewDecWithPrec(5, 1),
		Gamma:         sdk.NewDecWithPrec(5, 1),
		Tolerance:     sdk.NewDec(-1),
		Iterations:    srwr.DefaultIterations,
		MaxIterations: srwr.DefaultMaxIterations,
	}
}

// FromParams converts float params. Workers has no fixed point counterpart and is ignored.
func FromParams(p srwr.Params) (Params, error) {
	var (
		out Params
		err error
	)
	fields := []struct {
		name string
		src  float64
		dst  *sdk.Dec
	}{
		{"damping", p.Damping, &out.Damping},
		{"beta", p.Beta, &out.Beta},
		{"gamma", p.Gamma, &out.Gamma},
		{"tolerance", p.Tolerance, &out.Tolerance},
	}
	for _, f := range fields {
		if *f.dst, err = decFromFloat(f.src); err != nil {
			return Params{}, errors.Wrapf(srwr.ErrInvalidParams, "%s: %v", f.name, err)
		}
	}
	out.Iterations = p.Iterations
	out.MaxIterations = p.MaxIterations
	return out, nil
}

// Threshold reports whether the params select threshold mode
func (p Params) Threshold() bool {
	return p.Tolerance.IsPositive()
}

// Validate checks the parameter ranges
func (p Params) Validate() error {
	for _, d := range []sdk.Dec{p.Damping, p.Beta, p.Gamma, p.Tolerance} {
		if d.IsNil() {
			return errors.Wrap(srwr.ErrInvalidParams, "unset parameter")
		}
	}
	one := sdk.OneDec()
	if !p.Damping.IsPositive() || p.Damping.GTE(one) {
		return errors.Wrapf(srwr.ErrInvalidParams, "damping %s not in (0, 1)", p.Damping)
	}
	if p.Beta.IsNegative() || p.Beta.GT(one) {
		return errors.Wrapf(srwr.ErrInvalidParams, "beta %s not in [0, 1]", p.Beta)
	}
	if p.Gamma.IsNegative() || p.Gamma.GT(one) {
		return errors.Wrapf(srwr.ErrInvalidParams, "gamma %s not in [0, 1]", p.Gamma)
	}
	if p.Threshold() {
		if p.MaxIterations < 1 {
			return errors.Wrapf(srwr.ErrInvalidParams, "max iterations %d < 1", p.MaxIterations)
		}
	} else if p.Iterations < 1 {
		return errors.Wrapf(srwr.ErrInvalidParams, "iterations %d < 1", p.Iterations)
	}
	return nil
}
