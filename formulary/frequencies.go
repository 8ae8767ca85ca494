package formulary

import (
	"math"

	"github.com/plasmago/twofluid/particles"
)

// Gyrofrequency returns the unsigned cyclotron frequency |z| e B / m in rad/s
// for an ion of species sp in magnetic field b (T).
func Gyrofrequency(b float64, sp *particles.Species, z float64) float64 {
	return math.Abs(z) * ElementaryCharge * b / sp.Mass
}

// PlasmaFrequency returns ω_p = z e sqrt(n / (ε0 m)) in rad/s for number
// density n (1/m^3) and particle mass m (kg).
func PlasmaFrequency(n, mass, z float64) float64 {
	return z * ElementaryCharge * math.Sqrt(n/(Eps0*mass))
}

// ElectronPlasmaFrequency returns ω_pe for electron number density ne.
func ElectronPlasmaFrequency(ne float64) float64 {
	return PlasmaFrequency(ne, ElectronMass, 1)
}
