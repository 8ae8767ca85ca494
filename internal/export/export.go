// Package export writes solver results to disk as JSON or CSV so runs can be
// post-processed outside the terminal.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/plasmago/twofluid/dispersion"
)

// Mode is one named frequency branch flattened to real/imaginary planes in
// row-major (k, theta) order.
type Mode struct {
	Name string    `json:"name"`
	Real []float64 `json:"real"`
	Imag []float64 `json:"imag"`
}

// Dataset is a complete solver run: the model, its axes in SI units, and the
// frequency grids per mode.
type Dataset struct {
	Model    string    `json:"model"`
	Ion      string    `json:"ion"`
	K        []float64 `json:"k"`
	Theta    []float64 `json:"theta"`
	Modes    []Mode    `json:"modes"`
	Warnings []string  `json:"warnings,omitempty"`
}

// NewDataset flattens named frequency grids into an exportable dataset. All
// grids must share the k x theta shape of the axes.
func NewDataset(model, ion string, k, theta []float64, names []string,
	grids []*dispersion.Grid, warnings []dispersion.Warning) (*Dataset, error) {

	d := &Dataset{Model: model, Ion: ion, K: k, Theta: theta}
	for i, g := range grids {
		nk, ntheta := g.Dims()
		if nk != len(k) || ntheta != len(theta) {
			return nil, fmt.Errorf("export: grid %q is %dx%d, axes are %dx%d",
				names[i], nk, ntheta, len(k), len(theta))
		}
		m := Mode{Name: names[i]}
		for _, w := range g.Flat() {
			m.Real = append(m.Real, real(w))
			m.Imag = append(m.Imag, imag(w))
		}
		d.Modes = append(d.Modes, m)
	}
	for _, w := range warnings {
		d.Warnings = append(d.Warnings, w.String())
	}
	return d, nil
}

// Write picks the output format from the file extension: .json or .csv.
func Write(path string, d *Dataset) error {
	switch ext := filepath.Ext(path); ext {
	case ".json":
		return WriteJSON(path, d)
	case ".csv":
		return WriteCSV(path, d)
	default:
		return fmt.Errorf("export: unsupported output format %q (use .json or .csv)", ext)
	}
}

func WriteJSON(path string, d *Dataset) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(d)
}

// WriteCSV writes one row per (k, theta) point with real and imaginary
// columns for every mode.
func WriteCSV(path string, d *Dataset) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	header := []string{"k_rad_per_m", "theta_rad"}
	for _, m := range d.Modes {
		header = append(header, m.Name+"_re", m.Name+"_im")
	}
	if err := w.Write(header); err != nil {
		return err
	}

	ntheta := len(d.Theta)
	for i, kv := range d.K {
		for j, th := range d.Theta {
			row := []string{
				strconv.FormatFloat(kv, 'g', -1, 64),
				strconv.FormatFloat(th, 'g', -1, 64),
			}
			flat := i*ntheta + j
			for _, m := range d.Modes {
				row = append(row,
					strconv.FormatFloat(m.Real[flat], 'g', -1, 64),
					strconv.FormatFloat(m.Imag[flat], 'g', -1, 64))
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}
