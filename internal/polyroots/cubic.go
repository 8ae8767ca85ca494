// Package polyroots extracts polynomial roots via companion-matrix
// eigenvalues. The dispersion polynomials span over twenty decades between
// their smallest and largest roots, which defeats closed-form cubic formulas
// in float64; the balanced eigenvalue solve stays accurate across that range.
package polyroots

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrDegenerate indicates a vanishing leading coefficient.
	ErrDegenerate = errors.New("polyroots: leading coefficient is zero")

	// ErrNoConvergence indicates the eigenvalue iteration failed.
	ErrNoConvergence = errors.New("polyroots: eigenvalue iteration did not converge")
)

// Cubic returns the three complex roots of c3 x^3 + c2 x^2 + c1 x + c0 in no
// particular order.
func Cubic(c3, c2, c1, c0 float64) ([3]complex128, error) {
	var roots [3]complex128
	if c3 == 0 {
		return roots, ErrDegenerate
	}
	a2 := c2 / c3
	a1 := c1 / c3
	a0 := c0 / c3

	companion := mat.NewDense(3, 3, []float64{
		-a2, -a1, -a0,
		1, 0, 0,
		0, 1, 0,
	})

	var eig mat.Eigen
	if ok := eig.Factorize(companion, mat.EigenNone); !ok {
		return roots, ErrNoConvergence
	}
	vals := eig.Values(nil)
	copy(roots[:], vals)
	return roots, nil
}
