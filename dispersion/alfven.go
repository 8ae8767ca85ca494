package dispersion

import (
	"math/cmplx"

	"github.com/plasmago/twofluid/formulary"
)

// Alfven solves the two-fluid Alfvén branch in closed form (equation 5 of
// Bellan 2012; the 2x2 matrix method of Hasegawa & Uberoi 1982, Morales &
// Maggs 1997, Lysak & Lotko 1996):
//
//	ω² = kz² v_A² (1 + kx² c_s² / ω_ci²)
//
// The single branch is returned as ω = +sqrt(ω²) per grid point; no
// root-finding or mode classification is involved.
func Alfven(in Inputs) (*Result, error) {
	p, err := validate(in, tiRequired)
	if err != nil {
		return nil, err
	}

	vA := formulary.AlfvenSpeed(p.b, p.ni, p.sp, p.z)
	cs := formulary.IonSoundSpeed(p.te, p.ti, p.sp, p.gammaE, p.gammaI, p.z)
	omegaCI := formulary.Gyrofrequency(p.b, p.sp, p.z)

	m := newMesh(p.k, p.theta)
	out := &Result{Omega: newGrid(len(p.k), len(p.theta))}

	for i := range p.k {
		for j := range p.theta {
			a := m.kz[i][j] * vA
			a *= a
			f := m.kx[i][j] * cs / omegaCI
			f *= f
			out.Omega.set(i, j, cmplx.Sqrt(complex(a*(1+f), 0)))
		}
	}

	out.Warnings = checkLowFrequency(maxReal(out.Omega), omegaCI, alfvenThreshold)
	return out, nil
}
