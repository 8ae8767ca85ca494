package dispersion

import (
	"errors"
	"fmt"
	"math"

	"github.com/plasmago/twofluid/particles"
	"github.com/plasmago/twofluid/units"
)

// tiPolicy states what a model expects of the ion temperature argument.
type tiPolicy int

const (
	tiRequired tiPolicy = iota
	tiForbidden // the model assumes cold ions
)

// plasma holds the validated, unit-stripped SI inputs of one solver call.
type plasma struct {
	sp     *particles.Species
	z      float64
	b      float64   // T
	ni     float64   // 1/m^3
	te     float64   // K
	ti     float64   // K; zero under tiForbidden
	gammaE float64
	gammaI float64
	k      []float64 // rad/m, length N
	theta  []float64 // rad, length M
}

func (p *plasma) ne() float64 { return p.z * p.ni }

// scalarField is one row of the declarative validation table: argument name,
// expected unit family, and whether negative values are physical.
type scalarField struct {
	name        string
	q           units.Quantity
	dim         units.Dimension
	nonNegative bool
	dst         *float64
}

// validate checks every argument before any physics computation happens,
// returning the first failure wrapped in its error kind.
func validate(in Inputs, ti tiPolicy) (*plasma, error) {
	p := &plasma{}

	sp, err := particles.Resolve(in.Ion)
	if err != nil {
		return nil, fmt.Errorf("%w: argument 'ion': %v", ErrType, err)
	}
	if !sp.IsIon() && !sp.IsElement() {
		return nil, fmt.Errorf(
			"%w: the particle passed for 'ion' must be an ion or element, got %s (%s)",
			ErrDomain, sp, sp.Category)
	}
	p.sp = sp

	switch {
	case in.ZMean != nil:
		z := *in.ZMean
		if math.IsNaN(z) || math.IsInf(z, 0) {
			return nil, fmt.Errorf("%w: argument 'z_mean' must be finite, got %v", ErrType, z)
		}
		p.z = math.Abs(z)
	case sp.HasCharge:
		p.z = math.Abs(float64(sp.Charge))
	default:
		// An un-ionized element defaults to charge state +1.
		p.z = 1
	}

	if ti == tiForbidden && !in.Ti.IsZero() {
		return nil, fmt.Errorf(
			"%w: got unexpected argument 'T_i', dispersion relation assumes T_i = 0", ErrType)
	}

	fields := []scalarField{
		{"B", in.B, units.MagneticFluxDensity, true, &p.b},
		{"n_i", in.Ni, units.NumberDensity, true, &p.ni},
		{"T_e", in.Te, units.Temperature, true, &p.te},
	}
	if ti == tiRequired {
		fields = append(fields, scalarField{"T_i", in.Ti, units.Temperature, true, &p.ti})
	}
	for _, f := range fields {
		v, err := f.q.ScalarSI(f.dim)
		if err != nil {
			return nil, wrapUnitErr(f.name, err)
		}
		if f.nonNegative && v < 0 {
			return nil, fmt.Errorf("%w: argument '%s' can not be negative, got %v",
				ErrDomain, f.name, f.q)
		}
		*f.dst = v
	}

	p.gammaE, err = gammaValue("gamma_e", in.GammaE, DefaultGammaE)
	if err != nil {
		return nil, err
	}
	p.gammaI, err = gammaValue("gamma_i", in.GammaI, DefaultGammaI)
	if err != nil {
		return nil, err
	}

	p.k, err = in.K.SI(units.Wavenumber)
	if err != nil {
		return nil, wrapUnitErr("k", err)
	}
	for _, kv := range p.k {
		if kv <= 0 {
			return nil, fmt.Errorf("%w: argument 'k' can not be zero or have negative values",
				ErrDomain)
		}
	}

	p.theta, err = in.Theta.SI(units.Angle)
	if err != nil {
		return nil, wrapUnitErr("theta", err)
	}

	return p, nil
}

func gammaValue(name string, v, def float64) (float64, error) {
	if v == 0 {
		return def, nil
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: argument '%s' must be finite, got %v", ErrType, name, v)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: argument '%s' must be positive, got %v", ErrDomain, name, v)
	}
	return v, nil
}

// wrapUnitErr translates unit-layer failures into the solver error taxonomy,
// naming the offending argument.
func wrapUnitErr(name string, err error) error {
	switch {
	case errors.Is(err, units.ErrEmpty):
		return fmt.Errorf("%w: missing required argument '%s'", ErrType, name)
	case errors.Is(err, units.ErrDimension):
		return fmt.Errorf("%w: argument '%s': %v", ErrDimension, name, err)
	case errors.Is(err, units.ErrNotScalar):
		return fmt.Errorf("%w: argument '%s' must be a single value: %v", ErrShape, name, err)
	default:
		return fmt.Errorf("%w: argument '%s': %v", ErrType, name, err)
	}
}
