package dispersion

import (
	"fmt"

	"github.com/plasmago/twofluid/formulary"
	"github.com/plasmago/twofluid/internal/polyroots"
)

// Hirose solves the two-fluid dispersion relation of Hirose (2004), equation
// 7 of Bellan (2012):
//
//	(ω² − kz²v_A²)(ω⁴ − ω²k²(c_s² + v_A²) + k²v_A²kz²c_s²)
//	    = (k²c²/ω_pi²) ω² v_A² kz² (ω² − k²c_s²)
//
// The relation assumes cold ions; supplying Inputs.Ti is rejected with
// ErrType. Expanding the sextic in x = ω² gives the cubic
//
//	x³ − [A(1+D) + B + C] x² + A(2B + C + BD) x − B A² = 0
//
// with A = (kz v_A)², B = (k c_s)², C = (k v_A)², D = (k c/ω_pi)², which is
// solved numerically per grid point.
func Hirose(in Inputs) (*ModeSet, error) {
	p, err := validate(in, tiForbidden)
	if err != nil {
		return nil, err
	}

	vA := formulary.AlfvenSpeed(p.b, p.ni, p.sp, p.z)
	cs := formulary.IonSoundSpeed(p.te, 0, p.sp, p.gammaE, p.gammaI, p.z)
	omegaCI := formulary.Gyrofrequency(p.b, p.sp, p.z)
	omegaPI := formulary.PlasmaFrequency(p.ni, p.sp.Mass, p.z)

	m := newMesh(p.k, p.theta)
	out := &ModeSet{
		Fast:     newGrid(len(p.k), len(p.theta)),
		Alfven:   newGrid(len(p.k), len(p.theta)),
		Acoustic: newGrid(len(p.k), len(p.theta)),
	}

	for i, kv := range p.k {
		bc := kv * kv * cs * cs
		cc := kv * kv * vA * vA
		d := (kv * formulary.SpeedOfLight / omegaPI)
		d *= d
		for j := range p.theta {
			a := m.kz[i][j] * vA
			a *= a

			c3 := 1.0
			c2 := -a*(1+d) - bc - cc
			c1 := a * (2*bc + cc + bc*d)
			c0 := -bc * a * a

			roots, err := polyroots.Cubic(c3, c2, c1, c0)
			if err != nil {
				return nil, fmt.Errorf("hirose: k=%g theta=%g: %w", kv, p.theta[j], err)
			}
			w := classify(roots)
			out.Acoustic.set(i, j, w[0])
			out.Alfven.set(i, j, w[1])
			out.Fast.set(i, j, w[2])
		}
	}

	out.Warnings = checkLowFrequency(
		maxReal(out.Fast, out.Alfven, out.Acoustic), omegaCI, hiroseThreshold)
	return out, nil
}
