package dispersion_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plasmago/twofluid/dispersion"
	"github.com/plasmago/twofluid/particles"
	"github.com/plasmago/twofluid/units"
)

func hollwegBase() dispersion.Inputs {
	return dispersion.Inputs{
		B:     units.Scalar(8.3e-9, units.Tesla),
		Ion:   particles.Named("p+"),
		K:     units.Scalar(1e-4, units.RadianPerMeter),
		Ni:    units.Scalar(5.0e6, units.PerCubicMeter),
		Te:    units.Scalar(1.6e6, units.Kelvin),
		Ti:    units.Scalar(4.0e5, units.Kelvin),
		Theta: units.Scalar(45, units.Degree),
	}
}

func TestHollwegRegression(t *testing.T) {
	ms, err := dispersion.Hollweg(hollwegBase())
	require.NoError(t, err)

	nk, ntheta := ms.Fast.Dims()
	require.Equal(t, 1, nk)
	require.Equal(t, 1, ntheta)

	assert.InEpsilon(t, 7.817801395919e-01, real(ms.Acoustic.At(0, 0)), 1e-6)
	assert.InEpsilon(t, 8.055893881366e+00, real(ms.Alfven.At(0, 0)), 1e-6)
	assert.InEpsilon(t, 7.798091201540e+01, real(ms.Fast.At(0, 0)), 1e-6)
}

func TestHollwegValidation(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name   string
		mutate func(*dispersion.Inputs)
		kind   error
	}{
		{"B multi valued", func(in *dispersion.Inputs) {
			in.B = units.Vector([]float64{8e-9, 8.5e-9}, units.Tesla)
		}, dispersion.ErrShape},
		{"B negative", func(in *dispersion.Inputs) {
			in.B = units.Scalar(-1, units.Tesla)
		}, dispersion.ErrDomain},
		{"B wrong dimension", func(in *dispersion.Inputs) {
			in.B = units.Scalar(5, units.Kelvin)
		}, dispersion.ErrDimension},
		{"B missing", func(in *dispersion.Inputs) {
			in.B = units.Quantity{}
		}, dispersion.ErrType},
		{"ion unresolvable", func(in *dispersion.Inputs) {
			in.Ion = particles.Named("not a particle")
		}, dispersion.ErrType},
		{"ion nil", func(in *dispersion.Inputs) {
			in.Ion = nil
		}, dispersion.ErrType},
		{"ion is an electron", func(in *dispersion.Inputs) {
			in.Ion = particles.Named("e-")
		}, dispersion.ErrDomain},
		{"z_mean not finite", func(in *dispersion.Inputs) {
			in.ZMean = &nan
		}, dispersion.ErrType},
		{"k zero", func(in *dispersion.Inputs) {
			in.K = units.Scalar(0, units.RadianPerMeter)
		}, dispersion.ErrDomain},
		{"k negative element", func(in *dispersion.Inputs) {
			in.K = units.Vector([]float64{1e-4, -1}, units.RadianPerMeter)
		}, dispersion.ErrDomain},
		{"k wrong dimension", func(in *dispersion.Inputs) {
			in.K = units.Scalar(5, units.Tesla)
		}, dispersion.ErrDimension},
		{"n_i multi valued", func(in *dispersion.Inputs) {
			in.Ni = units.Vector([]float64{5e6, 6e6}, units.PerCubicMeter)
		}, dispersion.ErrShape},
		{"n_i negative", func(in *dispersion.Inputs) {
			in.Ni = units.Scalar(-5e6, units.PerCubicMeter)
		}, dispersion.ErrDomain},
		{"T_e multi valued", func(in *dispersion.Inputs) {
			in.Te = units.Vector([]float64{1.4e6, 1.7e6}, units.Kelvin)
		}, dispersion.ErrShape},
		{"T_e negative", func(in *dispersion.Inputs) {
			in.Te = units.Scalar(-10, units.ElectronVolt)
		}, dispersion.ErrDomain},
		{"T_e wrong dimension", func(in *dispersion.Inputs) {
			in.Te = units.Scalar(2, units.Radian)
		}, dispersion.ErrDimension},
		{"T_i missing", func(in *dispersion.Inputs) {
			in.Ti = units.Quantity{}
		}, dispersion.ErrType},
		{"T_i negative", func(in *dispersion.Inputs) {
			in.Ti = units.Scalar(-1, units.ElectronVolt)
		}, dispersion.ErrDomain},
		{"theta wrong dimension", func(in *dispersion.Inputs) {
			in.Theta = units.Scalar(5, units.ElectronVolt)
		}, dispersion.ErrDimension},
		{"gamma_e not finite", func(in *dispersion.Inputs) {
			in.GammaE = math.NaN()
		}, dispersion.ErrType},
		{"gamma_i not finite", func(in *dispersion.Inputs) {
			in.GammaI = math.Inf(1)
		}, dispersion.ErrType},
		{"gamma_i negative", func(in *dispersion.Inputs) {
			in.GammaI = -3
		}, dispersion.ErrDomain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := hollwegBase()
			tt.mutate(&in)
			_, err := dispersion.Hollweg(in)
			require.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestHollwegGridShapeAndOrdering(t *testing.T) {
	in := hollwegBase()
	in.K = units.Vector([]float64{1e-5, 1e-4, 1e-3, 1e-2}, units.RadianPerMeter)
	in.Theta = units.Vector([]float64{30, 60}, units.Degree)

	ms, err := dispersion.Hollweg(in)
	require.NoError(t, err)
	nk, ntheta := ms.Fast.Dims()
	require.Equal(t, 4, nk)
	require.Equal(t, 2, ntheta)

	for i := 0; i < nk; i++ {
		for j := 0; j < ntheta; j++ {
			assert.LessOrEqual(t, real(ms.Acoustic.At(i, j)), real(ms.Alfven.At(i, j)))
			assert.LessOrEqual(t, real(ms.Alfven.At(i, j)), real(ms.Fast.At(i, j)))
		}
	}
}

func TestHollwegWarning(t *testing.T) {
	ms, err := dispersion.Hollweg(hollwegBase())
	require.NoError(t, err)
	require.Len(t, ms.Warnings, 1)
	assert.Greater(t, ms.Warnings[0].Ratio, 0.01)
}

func TestHollwegQuiet(t *testing.T) {
	// w/w_ci ~ 3e-4 for these laboratory-scale parameters
	in := dispersion.Inputs{
		B:     units.Scalar(0.04, units.Tesla),
		Ion:   particles.Named("p+"),
		K:     units.Scalar(0.01, units.RadianPerMeter),
		Ni:    units.Scalar(6.358e19, units.PerCubicMeter),
		Te:    units.Scalar(20, units.ElectronVolt),
		Ti:    units.Scalar(10, units.ElectronVolt),
		Theta: units.Scalar(30, units.Degree),
	}
	ms, err := dispersion.Hollweg(in)
	require.NoError(t, err)
	assert.Empty(t, ms.Warnings)
}

func TestHollwegResolvedSpeciesInput(t *testing.T) {
	sp, err := particles.Parse("p+")
	require.NoError(t, err)

	in := hollwegBase()
	in.Ion = sp
	fromSpecies, err := dispersion.Hollweg(in)
	require.NoError(t, err)

	fromName, err := dispersion.Hollweg(hollwegBase())
	require.NoError(t, err)
	assert.Equal(t, fromName.Fast.Flat(), fromSpecies.Fast.Flat())
}
