// Package particles resolves symbolic particle identifiers to their physical
// properties (mass, charge number, category).
//
// Identifiers follow the common plasma-physics shorthand: "p+" or "proton",
// "D+" for deuterium ions, "alpha" or "He-4 2+" for alpha particles, "e-" for
// electrons, and bare element symbols with an optional isotope mass number and
// charge suffix ("He", "He+", "He-4 2+", "Fe 3+").
//
// The [Ion] interface is the entry point for solver arguments: pass
// [Named]("p+") for a textual identifier, or a *[Species] already resolved.
package particles
