package dispersion

import "math"

// Grid is an N×M matrix of complex frequencies, one entry per (k[i], θ[j])
// pair. Imaginary parts carry growth/damping; they are preserved for the
// caller to inspect.
type Grid struct {
	nk, ntheta int
	data       []complex128
}

func newGrid(nk, ntheta int) *Grid {
	return &Grid{nk: nk, ntheta: ntheta, data: make([]complex128, nk*ntheta)}
}

// Dims returns (N, M): the k and theta grid lengths.
func (g *Grid) Dims() (nk, ntheta int) { return g.nk, g.ntheta }

// At returns the frequency at k index i, theta index j.
func (g *Grid) At(i, j int) complex128 { return g.data[i*g.ntheta+j] }

func (g *Grid) set(i, j int, v complex128) { g.data[i*g.ntheta+j] = v }

// Row returns the M frequencies for k index i. The slice aliases the grid.
func (g *Grid) Row(i int) []complex128 {
	return g.data[i*g.ntheta : (i+1)*g.ntheta]
}

// Flat returns all N*M values in row-major (k-major) order. The slice aliases
// the grid.
func (g *Grid) Flat() []complex128 { return g.data }

// mesh holds the wave-vector components over the (k, θ) grid:
// kz[i][j] = k[i] cos θ[j], kx[i][j] = sqrt(k[i]² − kz[i][j]²).
type mesh struct {
	k, theta []float64
	kz, kx   [][]float64
}

func newMesh(k, theta []float64) *mesh {
	m := &mesh{k: k, theta: theta}
	m.kz = make([][]float64, len(k))
	m.kx = make([][]float64, len(k))
	for i, kv := range k {
		m.kz[i] = make([]float64, len(theta))
		m.kx[i] = make([]float64, len(theta))
		for j, th := range theta {
			kz := kv * math.Cos(th)
			m.kz[i][j] = kz
			// Roundoff can push k²−kz² a hair negative at θ = 0;
			// clamp instead of leaking NaN into a real channel.
			perp := kv*kv - kz*kz
			if perp < 0 {
				perp = 0
			}
			m.kx[i][j] = math.Sqrt(perp)
		}
	}
	return m
}
