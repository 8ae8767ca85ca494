package units

import (
	"fmt"
	"math"
)

// Dimension identifies a family of commensurable units.
type Dimension int

const (
	Dimensionless Dimension = iota
	MagneticFluxDensity
	Wavenumber
	NumberDensity
	Temperature
	Angle
	Frequency
)

func (d Dimension) String() string {
	switch d {
	case Dimensionless:
		return "dimensionless"
	case MagneticFluxDensity:
		return "magnetic flux density"
	case Wavenumber:
		return "wavenumber"
	case NumberDensity:
		return "number density"
	case Temperature:
		return "temperature"
	case Angle:
		return "angle"
	case Frequency:
		return "angular frequency"
	default:
		return fmt.Sprintf("Dimension(%d)", int(d))
	}
}

// kelvinPerEV converts an electron-volt energy to its equivalent temperature,
// T = E / k_B.
const kelvinPerEV = 1.602176634e-19 / 1.380649e-23

// Unit is a named unit within a dimension family. Factor converts a value in
// this unit to the family's SI base unit (T, rad/m, 1/m^3, K, rad, rad/s).
type Unit struct {
	Symbol string
	Dim    Dimension
	Factor float64
}

// SI base and common derived units accepted by the solvers.
var (
	None = Unit{"", Dimensionless, 1}

	Tesla     = Unit{"T", MagneticFluxDensity, 1}
	Gauss     = Unit{"G", MagneticFluxDensity, 1e-4}
	NanoTesla = Unit{"nT", MagneticFluxDensity, 1e-9}

	RadianPerMeter = Unit{"rad/m", Wavenumber, 1}
	PerMeter       = Unit{"1/m", Wavenumber, 1}

	PerCubicMeter      = Unit{"1/m^3", NumberDensity, 1}
	PerCubicCentimeter = Unit{"1/cm^3", NumberDensity, 1e6}

	Kelvin       = Unit{"K", Temperature, 1}
	ElectronVolt = Unit{"eV", Temperature, kelvinPerEV}

	Radian = Unit{"rad", Angle, 1}
	Degree = Unit{"deg", Angle, math.Pi / 180}

	RadianPerSecond = Unit{"rad/s", Frequency, 1}
)

var bySymbol = map[string]Unit{
	"T":      Tesla,
	"G":      Gauss,
	"nT":     NanoTesla,
	"rad/m":  RadianPerMeter,
	"1/m":    PerMeter,
	"m^-1":   PerMeter,
	"1/m^3":  PerCubicMeter,
	"m^-3":   PerCubicMeter,
	"1/cm^3": PerCubicCentimeter,
	"cm^-3":  PerCubicCentimeter,
	"K":      Kelvin,
	"eV":     ElectronVolt,
	"rad":    Radian,
	"deg":    Degree,
	"rad/s":  RadianPerSecond,
}

// ParseUnit resolves a unit symbol to its Unit. Used by the scenario loader;
// library callers normally reference the Unit vars directly.
func ParseUnit(symbol string) (Unit, error) {
	u, ok := bySymbol[symbol]
	if !ok {
		return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, symbol)
	}
	return u, nil
}
