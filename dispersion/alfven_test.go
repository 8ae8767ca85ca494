package dispersion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plasmago/twofluid/dispersion"
	"github.com/plasmago/twofluid/particles"
	"github.com/plasmago/twofluid/units"
)

func solarWindWarm() dispersion.Inputs {
	in := solarWind()
	in.Ti = units.Scalar(4.0e5, units.Kelvin)
	return in
}

func TestAlfvenRegression(t *testing.T) {
	res, err := dispersion.Alfven(solarWindWarm())
	require.NoError(t, err)

	nk, ntheta := res.Omega.Dims()
	require.Equal(t, 2, nk)
	require.Equal(t, 1, ntheta)

	want := []float64{7.010056467511e+00, 6.701977610897e+08}
	got := realsOf(res.Omega)
	for i := range want {
		assert.InEpsilon(t, want[i], got[i], 1e-6)
		assert.Zero(t, imag(res.Omega.Flat()[i]))
	}
}

func TestAlfvenRequiresTi(t *testing.T) {
	_, err := dispersion.Alfven(solarWind())
	require.ErrorIs(t, err, dispersion.ErrType)
	assert.Contains(t, err.Error(), "T_i")
}

func TestAlfvenGridShape(t *testing.T) {
	in := solarWindWarm()
	in.K = units.Vector([]float64{1e-7, 1e-5}, units.RadianPerMeter)
	in.Theta = units.Vector([]float64{10, 45, 80}, units.Degree)
	res, err := dispersion.Alfven(in)
	require.NoError(t, err)
	nk, ntheta := res.Omega.Dims()
	assert.Equal(t, 2, nk)
	assert.Equal(t, 3, ntheta)
}

func TestAlfvenTemperatureEquivalence(t *testing.T) {
	// eV inputs convert through the temperature-energy equivalence
	in := solarWindWarm()
	inEV := solarWindWarm()
	inEV.Te = units.Scalar(1.6e6/11604.518121550082, units.ElectronVolt)

	res, err := dispersion.Alfven(in)
	require.NoError(t, err)
	resEV, err := dispersion.Alfven(inEV)
	require.NoError(t, err)
	assert.InEpsilon(t, real(res.Omega.At(0, 0)), real(resEV.Omega.At(0, 0)), 1e-12)
}

func TestAlfvenWarning(t *testing.T) {
	res, err := dispersion.Alfven(solarWindWarm())
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Greater(t, res.Warnings[0].Ratio, 0.01)
	assert.Equal(t, 0.01, res.Warnings[0].Threshold)
}

func TestAlfvenQuiet(t *testing.T) {
	// w/w_ci ~ 0.0074, below the 0.01 cutoff
	in := dispersion.Inputs{
		B:     units.Scalar(0.04, units.Tesla),
		Ion:   particles.Named("p+"),
		K:     units.Scalar(0.3, units.RadianPerMeter),
		Ni:    units.Scalar(6.358e19, units.PerCubicMeter),
		Te:    units.Scalar(20, units.ElectronVolt),
		Ti:    units.Scalar(10, units.ElectronVolt),
		Theta: units.Scalar(30, units.Degree),
	}
	res, err := dispersion.Alfven(in)
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
}

func TestAlfvenPerpendicularClamp(t *testing.T) {
	// theta = 0 can push k^2 - kz^2 infinitesimally negative; the result
	// must stay finite and real
	in := solarWindWarm()
	in.Theta = units.Scalar(0, units.Degree)
	res, err := dispersion.Alfven(in)
	require.NoError(t, err)
	for _, w := range res.Omega.Flat() {
		assert.False(t, real(w) != real(w), "NaN frequency")
		assert.Zero(t, imag(w))
	}
}
