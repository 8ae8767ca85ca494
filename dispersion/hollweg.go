package dispersion

import (
	"fmt"

	"github.com/plasmago/twofluid/formulary"
	"github.com/plasmago/twofluid/internal/polyroots"
)

// Hollweg solves the dispersion relation of Hollweg (1999), equation 38 there
// and equation 3 of Bellan (2012), as a cubic in x = ω²:
//
//	(F kx² + 1)/σ x³ − [(α/σ)(1 + β + F kx²) + D kx² + 1] x²
//	    + α (1 + 2β + D kx²) x − β α σ = 0
//
// with β = (c_s/v_A)², D = (c_s/ω_ci)², F = (c/ω_pe)², σ = (kz v_A)²,
// α = (k v_A)², solved numerically per grid point.
func Hollweg(in Inputs) (*ModeSet, error) {
	p, err := validate(in, tiRequired)
	if err != nil {
		return nil, err
	}

	vA := formulary.AlfvenSpeed(p.b, p.ni, p.sp, p.z)
	cs := formulary.IonSoundSpeed(p.te, p.ti, p.sp, p.gammaE, p.gammaI, p.z)
	omegaCI := formulary.Gyrofrequency(p.b, p.sp, p.z)
	omegaPE := formulary.ElectronPlasmaFrequency(p.ne())

	beta := cs / vA
	beta *= beta
	d := cs / omegaCI
	d *= d
	f := formulary.SpeedOfLight / omegaPE
	f *= f

	m := newMesh(p.k, p.theta)
	out := &ModeSet{
		Fast:     newGrid(len(p.k), len(p.theta)),
		Alfven:   newGrid(len(p.k), len(p.theta)),
		Acoustic: newGrid(len(p.k), len(p.theta)),
	}

	for i, kv := range p.k {
		alpha := kv * kv * vA * vA
		for j := range p.theta {
			sigma := m.kz[i][j] * vA
			sigma *= sigma
			kx2 := m.kx[i][j] * m.kx[i][j]

			c3 := (f*kx2 + 1) / sigma
			c2 := -((alpha/sigma)*(1+beta+f*kx2) + d*kx2 + 1)
			c1 := alpha * (1 + 2*beta + d*kx2)
			c0 := -beta * alpha * sigma

			roots, err := polyroots.Cubic(c3, c2, c1, c0)
			if err != nil {
				return nil, fmt.Errorf("hollweg: k=%g theta=%g: %w", kv, p.theta[j], err)
			}
			w := classify(roots)
			out.Acoustic.set(i, j, w[0])
			out.Alfven.set(i, j, w[1])
			out.Fast.set(i, j, w[2])
		}
	}

	out.Warnings = checkLowFrequency(
		maxReal(out.Fast, out.Alfven, out.Acoustic), omegaCI, hollwegThreshold)
	return out, nil
}
