package dispersion

import (
	"github.com/plasmago/twofluid/particles"
	"github.com/plasmago/twofluid/units"
)

// Default adiabatic indices: isothermal electrons, ions with one degree of
// freedom along the field lines.
const (
	DefaultGammaE = 1.0
	DefaultGammaI = 3.0
)

// Inputs are the physical parameters shared by all dispersion models. B, Ni
// and Te must be single valued; K and Theta may be single valued or 1-D
// (lengths N and M, the output grid is N×M).
type Inputs struct {
	// B is the magnetic field magnitude (magnetic flux density).
	B units.Quantity

	// Ion identifies the ion species: particles.Named("p+") or an
	// already-resolved *particles.Species. Must be an ion or a neutral
	// element; an element with no charge state is assumed singly ionized
	// unless ZMean is set.
	Ion particles.Ion

	// K is the wavenumber, strictly positive everywhere.
	K units.Quantity

	// Ni is the ion number density.
	Ni units.Quantity

	// Te is the electron temperature, in kelvin or electron-volts.
	Te units.Quantity

	// Ti is the ion temperature. Required by Alfven and Hollweg; rejected
	// by Hirose, whose relation assumes cold ions.
	Ti units.Quantity

	// Theta is the propagation angle with respect to the magnetic field.
	Theta units.Quantity

	// GammaE is the electron adiabatic index. Zero means DefaultGammaE.
	GammaE float64

	// GammaI is the ion adiabatic index. Zero means DefaultGammaI.
	GammaI float64

	// ZMean is the mean ionization state. When set it overrides any charge
	// state carried by Ion; its absolute value is used.
	ZMean *float64
}
