// Package units provides dimensional metadata for the physical quantities
// consumed by the dispersion solvers.
//
// A [Quantity] pairs a scalar or 1-D value with a [Unit]; a [Unit] belongs to
// one of a closed set of dimension families ([Dimension]) and carries its
// conversion factor to the family's SI base unit. Conversion to SI checks the
// dimension family, so a magnetic field supplied in meters fails instead of
// silently producing garbage:
//
//	b := units.Scalar(8.3e-9, units.Tesla)
//	si, err := b.ScalarSI(units.MagneticFluxDensity)
//
// Temperatures may be given in kelvin or electron-volts; the eV conversion
// uses the temperature-energy equivalence T = E / k_B.
package units
