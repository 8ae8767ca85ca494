// Package scenario loads and saves plasma parameter sets for the CLI as YAML
// files, and converts them to solver inputs.
package scenario

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/plasmago/twofluid/dispersion"
	"github.com/plasmago/twofluid/particles"
	"github.com/plasmago/twofluid/units"
)

// Value is a scalar with a unit symbol, e.g. {value: 8.3e-9, unit: T}.
type Value struct {
	Value float64 `yaml:"value"`
	Unit  string  `yaml:"unit"`
}

// Axis is a scalar or 1-D quantity: an explicit value, an explicit list, or a
// logarithmic sweep of 10^start .. 10^stop.
type Axis struct {
	Value    float64   `yaml:"value,omitempty"`
	Values   []float64 `yaml:"values,omitempty,flow"`
	Logspace *Logspace `yaml:"logspace,omitempty"`
	Unit     string    `yaml:"unit"`
}

// Logspace describes num points spaced evenly in log10 between 10^start and
// 10^stop.
type Logspace struct {
	Start float64 `yaml:"start"`
	Stop  float64 `yaml:"stop"`
	Num   int     `yaml:"num"`
}

func (l *Logspace) points() []float64 {
	if l.Num <= 1 {
		return []float64{math.Pow(10, l.Start)}
	}
	out := make([]float64, l.Num)
	step := (l.Stop - l.Start) / float64(l.Num-1)
	for i := range out {
		out[i] = math.Pow(10, l.Start+float64(i)*step)
	}
	return out
}

// Scenario is a complete parameter set for one solver run. A field with an
// empty unit is treated as unset, letting the solver report it missing.
type Scenario struct {
	Model  string   `yaml:"model"`
	Ion    string   `yaml:"ion"`
	B      Value    `yaml:"b"`
	K      Axis     `yaml:"k"`
	Ni     Value    `yaml:"n_i"`
	Te     Value    `yaml:"t_e"`
	Ti     Value    `yaml:"t_i,omitempty"`
	Theta  Axis     `yaml:"theta"`
	GammaE float64  `yaml:"gamma_e,omitempty"`
	GammaI float64  `yaml:"gamma_i,omitempty"`
	ZMean  *float64 `yaml:"z_mean,omitempty"`
}

// Default returns the solar-wind scenario used throughout the reference
// literature examples.
func Default() *Scenario {
	return &Scenario{
		Model: "alfven",
		Ion:   "p+",
		B:     Value{8.3e-9, "T"},
		K:     Axis{Logspace: &Logspace{Start: -7, Stop: -2, Num: 2}, Unit: "rad/m"},
		Ni:    Value{5, "1/m^3"},
		Te:    Value{1.6e6, "K"},
		Ti:    Value{4.0e5, "K"},
		Theta: Axis{Value: 30, Unit: "deg"},
	}
}

// Load reads a scenario YAML file. Fields absent from the file stay unset so
// the solver reports them missing rather than silently defaulting.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save writes a scenario as YAML.
func Save(path string, s *Scenario) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (v Value) quantity() (units.Quantity, error) {
	if v.Unit == "" {
		return units.Quantity{}, nil
	}
	u, err := units.ParseUnit(v.Unit)
	if err != nil {
		return units.Quantity{}, err
	}
	return units.Scalar(v.Value, u), nil
}

func (a Axis) quantity() (units.Quantity, error) {
	if a.Unit == "" {
		return units.Quantity{}, nil
	}
	u, err := units.ParseUnit(a.Unit)
	if err != nil {
		return units.Quantity{}, err
	}
	switch {
	case a.Values != nil:
		return units.Vector(a.Values, u), nil
	case a.Logspace != nil:
		return units.Vector(a.Logspace.points(), u), nil
	default:
		return units.Scalar(a.Value, u), nil
	}
}

// Inputs converts the scenario to solver inputs, resolving unit symbols.
func (s *Scenario) Inputs() (dispersion.Inputs, error) {
	var in dispersion.Inputs
	var err error

	if in.B, err = s.B.quantity(); err != nil {
		return in, fmt.Errorf("scenario: field b: %w", err)
	}
	if in.K, err = s.K.quantity(); err != nil {
		return in, fmt.Errorf("scenario: field k: %w", err)
	}
	if in.Ni, err = s.Ni.quantity(); err != nil {
		return in, fmt.Errorf("scenario: field n_i: %w", err)
	}
	if in.Te, err = s.Te.quantity(); err != nil {
		return in, fmt.Errorf("scenario: field t_e: %w", err)
	}
	if in.Ti, err = s.Ti.quantity(); err != nil {
		return in, fmt.Errorf("scenario: field t_i: %w", err)
	}
	if in.Theta, err = s.Theta.quantity(); err != nil {
		return in, fmt.Errorf("scenario: field theta: %w", err)
	}
	in.Ion = particles.Named(s.Ion)
	in.GammaE = s.GammaE
	in.GammaI = s.GammaI
	in.ZMean = s.ZMean
	return in, nil
}

// Presets are named ready-to-run scenarios.
var presets = map[string]func() *Scenario{
	"solar-wind": Default,
	"tokamak": func() *Scenario {
		return &Scenario{
			Model: "hollweg",
			Ion:   "D+",
			B:     Value{2.0, "T"},
			K:     Axis{Logspace: &Logspace{Start: -1, Stop: 2, Num: 25}, Unit: "rad/m"},
			Ni:    Value{1e19, "1/m^3"},
			Te:    Value{2000, "eV"},
			Ti:    Value{1000, "eV"},
			Theta: Axis{Value: 88, Unit: "deg"},
		}
	},
}

// Preset returns a named preset scenario, or nil if the name is unknown.
func Preset(name string) *Scenario {
	f, ok := presets[name]
	if !ok {
		return nil
	}
	return f()
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
