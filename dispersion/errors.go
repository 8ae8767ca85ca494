package dispersion

import "errors"

// Validation error kinds. Every failure returned by a solver wraps exactly one
// of these, so callers can branch with errors.Is. All of them are raised
// before any physics computation begins; the low-frequency validity check is
// advisory and reported through [Warning], never as an error.
var (
	// ErrType indicates a wrong argument type: an unresolvable ion
	// identifier, a non-finite gamma or z_mean, a missing required
	// argument, or an argument the model forbids.
	ErrType = errors.New("dispersion: invalid argument type")

	// ErrDimension indicates a quantity with an incompatible physical
	// dimension, e.g. a magnetic field supplied in meters.
	ErrDimension = errors.New("dispersion: incompatible physical dimension")

	// ErrShape indicates a multi-valued quantity where a single value is
	// required, or an arity outside {scalar, 1-D}.
	ErrShape = errors.New("dispersion: invalid argument shape")

	// ErrDomain indicates a physically invalid value: k ≤ 0, a negative
	// field/density/temperature, a non-positive gamma, or a particle that
	// is neither an ion nor an element.
	ErrDomain = errors.New("dispersion: argument outside physical domain")
)
