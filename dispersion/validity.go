package dispersion

import "fmt"

// Low-frequency validity thresholds on ω/ω_ci.
const (
	hiroseThreshold  = 0.1
	alfvenThreshold  = 0.01
	hollwegThreshold = 0.01
)

// Warning is an advisory physics diagnostic: the computed frequencies violate
// the model's low-frequency assumption ω/ω_ci ≪ 1. The result it accompanies
// is still returned in full.
type Warning struct {
	OmegaMax  float64 // largest computed Re(ω), rad/s
	Ratio     float64 // OmegaMax / ω_ci
	Threshold float64 // the model's cutoff on the ratio
}

func (w Warning) String() string {
	return fmt.Sprintf(
		"solver is valid in the regime w/w_ci << 1: computed w = %.4g rad/s with w/w_ci = %.4g (threshold %g)",
		w.OmegaMax, w.Ratio, w.Threshold)
}

// checkLowFrequency compares the largest computed real frequency against the
// ion gyrofrequency and returns an advisory warning when the model's
// assumption is violated.
func checkLowFrequency(omegaMax, omegaCI, threshold float64) []Warning {
	ratio := omegaMax / omegaCI
	if ratio > threshold {
		return []Warning{{OmegaMax: omegaMax, Ratio: ratio, Threshold: threshold}}
	}
	return nil
}

func maxReal(grids ...*Grid) float64 {
	var m float64
	first := true
	for _, g := range grids {
		for _, v := range g.Flat() {
			if first || real(v) > m {
				m = real(v)
				first = false
			}
		}
	}
	return m
}
