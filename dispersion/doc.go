// Package dispersion computes numerical solutions to two-fluid plasma
// dispersion relations.
//
// Three models are provided, each a single call taking the same [Inputs]:
//
//   - [Hirose]: numerical solution of Hirose's two-fluid relation
//     (Hirose 2004; equation 7 of Bellan 2012), cold ions (T_i = 0)
//   - [Hollweg]: numerical solution of Hollweg's relation
//     (Hollweg 1999; equation 3 of Bellan 2012)
//   - [Alfven]: closed-form solution of the two-fluid Alfvén branch
//     (equation 5 of Bellan 2012)
//
// Hirose and Hollweg reduce their relation to a cubic in ω², solve it per
// (k, θ) grid point, map back to ω through the principal complex square root,
// and classify the three branches by magnitude: acoustic ≤ Alfvén ≤ fast.
// Complex or negative frequencies are preserved, never discarded; inspect the
// imaginary parts of the returned grids.
//
// All models assume low-frequency waves ω/ω_ci ≪ 1. When a computed frequency
// violates that assumption, the result carries an advisory [Warning]; the
// computation is never aborted.
//
// Charge policy: when Inputs.ZMean is nil the charge state is resolved from
// the ion; an un-ionized element defaults to charge state +1 unless ZMean is
// supplied.
package dispersion
