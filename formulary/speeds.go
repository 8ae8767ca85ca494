package formulary

import (
	"math"

	"github.com/plasmago/twofluid/particles"
)

// AlfvenSpeed returns v_A in m/s for magnetic field b (T) and ion number
// density ni (1/m^3). The mass density includes the neutralizing electron
// population n_e = z*ni.
func AlfvenSpeed(b, ni float64, sp *particles.Species, z float64) float64 {
	rho := ni*sp.Mass + z*ni*ElectronMass
	return b / math.Sqrt(Mu0*rho)
}

// IonSoundSpeed returns c_s in m/s for electron and ion temperatures te, ti
// (K) with adiabatic indices gammaE, gammaI and mean charge state z.
func IonSoundSpeed(te, ti float64, sp *particles.Species, gammaE, gammaI, z float64) float64 {
	return math.Sqrt((gammaE*z*Boltzmann*te + gammaI*Boltzmann*ti) / sp.Mass)
}

// ThermalSpeed returns the most-probable thermal speed sqrt(2 k_B T / m) in
// m/s for a particle of mass m (kg) at temperature t (K).
func ThermalSpeed(t, mass float64) float64 {
	return math.Sqrt(2 * Boltzmann * t / mass)
}
