package dispersion

import "math/cmplx"

// ModeSet is the classified result of a three-branch model. Each grid holds
// angular frequency in rad/s, shape N×M. Per grid point the branches satisfy
// Re(Acoustic) ≤ Re(Alfven) ≤ Re(Fast).
type ModeSet struct {
	Fast     *Grid
	Alfven   *Grid
	Acoustic *Grid

	// Warnings carries advisory physics diagnostics; a non-empty slice
	// never invalidates the computed modes.
	Warnings []Warning
}

// Result is the outcome of a single-branch model (Alfven), angular frequency
// in rad/s over the N×M grid.
type Result struct {
	Omega    *Grid
	Warnings []Warning
}

// classify maps the three ω² roots to frequencies through the principal
// complex square root and orders them ascending by real part (imaginary part
// breaks ties), so that index 0 is the acoustic branch and index 2 the fast
// branch.
func classify(squared [3]complex128) [3]complex128 {
	var w [3]complex128
	for i, r := range squared {
		w[i] = cmplx.Sqrt(r)
	}
	// insertion sort of three values
	if less(w[1], w[0]) {
		w[0], w[1] = w[1], w[0]
	}
	if less(w[2], w[1]) {
		w[1], w[2] = w[2], w[1]
		if less(w[1], w[0]) {
			w[0], w[1] = w[1], w[0]
		}
	}
	return w
}

func less(a, b complex128) bool {
	if real(a) != real(b) {
		return real(a) < real(b)
	}
	return imag(a) < imag(b)
}
