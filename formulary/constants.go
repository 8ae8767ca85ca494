package formulary

// SI physical constants (CODATA 2018).
const (
	SpeedOfLight     = 299792458.0       // m/s
	Mu0              = 1.25663706212e-06 // N/A^2
	Eps0             = 8.8541878128e-12  // F/m
	ElementaryCharge = 1.602176634e-19   // C
	Boltzmann        = 1.380649e-23      // J/K
	ElectronMass     = 9.1093837015e-31  // kg
	ProtonMass       = 1.67262192369e-27 // kg
)
