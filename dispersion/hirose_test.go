package dispersion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plasmago/twofluid/dispersion"
	"github.com/plasmago/twofluid/particles"
	"github.com/plasmago/twofluid/units"
)

// The solar-wind scenario from the reference literature: B = 8.3 nT, protons,
// n_i = 5 m^-3, T_e = 1.6e6 K, theta = 30 degrees.
func solarWind() dispersion.Inputs {
	return dispersion.Inputs{
		B:     units.Scalar(8.3e-9, units.Tesla),
		Ion:   particles.Named("p+"),
		K:     units.Vector([]float64{1e-7, 1e-2}, units.RadianPerMeter),
		Ni:    units.Scalar(5, units.PerCubicMeter),
		Te:    units.Scalar(1.6e6, units.Kelvin),
		Theta: units.Scalar(30, units.Degree),
	}
}

func realsOf(g *dispersion.Grid) []float64 {
	flat := g.Flat()
	out := make([]float64, len(flat))
	for i, v := range flat {
		out[i] = real(v)
	}
	return out
}

func TestHiroseRegression(t *testing.T) {
	ms, err := dispersion.Hirose(solarWind())
	require.NoError(t, err)

	want := map[*dispersion.Grid][]float64{
		ms.Acoustic: {9.952264552793e-03, 6.883401101617e-01},
		ms.Alfven:   {7.861004747987e-01, 1.149218916923e+03},
		ms.Fast:     {7.217820949512e+01, 7.138389346898e+11},
	}
	for g, vals := range want {
		nk, ntheta := g.Dims()
		require.Equal(t, 2, nk)
		require.Equal(t, 1, ntheta)
		got := realsOf(g)
		for i := range vals {
			assert.InEpsilon(t, vals[i], got[i], 1e-6)
		}
	}
}

func TestHiroseRejectsTi(t *testing.T) {
	in := solarWind()
	in.Ti = units.Scalar(4.0e5, units.Kelvin)
	_, err := dispersion.Hirose(in)
	require.ErrorIs(t, err, dispersion.ErrType)
	assert.Contains(t, err.Error(), "T_i")
}

func TestHiroseGridShape(t *testing.T) {
	in := solarWind()
	in.K = units.Vector([]float64{1e-7, 1e-5, 1e-3}, units.RadianPerMeter)
	in.Theta = units.Vector([]float64{15, 30, 45, 60}, units.Degree)

	ms, err := dispersion.Hirose(in)
	require.NoError(t, err)
	for _, g := range []*dispersion.Grid{ms.Fast, ms.Alfven, ms.Acoustic} {
		nk, ntheta := g.Dims()
		assert.Equal(t, 3, nk)
		assert.Equal(t, 4, ntheta)
	}
}

func TestHiroseModeOrdering(t *testing.T) {
	in := solarWind()
	in.K = units.Vector([]float64{1e-7, 1e-4, 1e-2}, units.RadianPerMeter)
	in.Theta = units.Vector([]float64{10, 40, 80}, units.Degree)

	ms, err := dispersion.Hirose(in)
	require.NoError(t, err)
	nk, ntheta := ms.Fast.Dims()
	for i := 0; i < nk; i++ {
		for j := 0; j < ntheta; j++ {
			acoustic := real(ms.Acoustic.At(i, j))
			alfven := real(ms.Alfven.At(i, j))
			fast := real(ms.Fast.At(i, j))
			assert.LessOrEqual(t, acoustic, alfven, "point (%d,%d)", i, j)
			assert.LessOrEqual(t, alfven, fast, "point (%d,%d)", i, j)
		}
	}
}

func TestHiroseWarning(t *testing.T) {
	// the solar-wind scenario is far outside the low-frequency regime
	ms, err := dispersion.Hirose(solarWind())
	require.NoError(t, err)
	require.Len(t, ms.Warnings, 1)
	assert.Greater(t, ms.Warnings[0].Ratio, 0.1)
	assert.Equal(t, 0.1, ms.Warnings[0].Threshold)
}

func TestHiroseQuiet(t *testing.T) {
	// laboratory-scale parameters keep w/w_ci ~ 0.023, below the 0.1 cutoff
	in := dispersion.Inputs{
		B:     units.Scalar(1.0, units.Tesla),
		Ion:   particles.Named("p+"),
		K:     units.Scalar(1.0, units.RadianPerMeter),
		Ni:    units.Scalar(1e20, units.PerCubicMeter),
		Te:    units.Scalar(20, units.ElectronVolt),
		Theta: units.Scalar(30, units.Degree),
	}
	ms, err := dispersion.Hirose(in)
	require.NoError(t, err)
	assert.Empty(t, ms.Warnings)
}

func TestHiroseIdempotent(t *testing.T) {
	first, err := dispersion.Hirose(solarWind())
	require.NoError(t, err)
	second, err := dispersion.Hirose(solarWind())
	require.NoError(t, err)
	assert.Equal(t, first.Fast.Flat(), second.Fast.Flat())
	assert.Equal(t, first.Alfven.Flat(), second.Alfven.Flat())
	assert.Equal(t, first.Acoustic.Flat(), second.Acoustic.Flat())
}

func TestHiroseChargeDefault(t *testing.T) {
	// an un-ionized element defaults to charge state +1
	one := 1.0
	in := solarWind()
	in.Ion = particles.Named("H-1")
	implicit, err := dispersion.Hirose(in)
	require.NoError(t, err)

	in = solarWind()
	in.Ion = particles.Named("H-1")
	in.ZMean = &one
	explicit, err := dispersion.Hirose(in)
	require.NoError(t, err)

	assert.Equal(t, explicit.Fast.Flat(), implicit.Fast.Flat())
}

func TestHiroseZMeanAbsolute(t *testing.T) {
	neg := -1.0
	in := solarWind()
	in.ZMean = &neg
	ms, err := dispersion.Hirose(in)
	require.NoError(t, err)

	ref, err := dispersion.Hirose(solarWind())
	require.NoError(t, err)
	assert.Equal(t, ref.Fast.Flat(), ms.Fast.Flat())
}
