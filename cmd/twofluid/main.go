package main

import (
	"fmt"
	"math"
	"math/cmplx"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/plasmago/twofluid/dispersion"
	"github.com/plasmago/twofluid/internal/export"
	"github.com/plasmago/twofluid/internal/scenario"
	"github.com/plasmago/twofluid/units"
)

var (
	configFile string
	preset     string
	ionName    string
	bField     float64
	kValues    []float64
	niDensity  float64
	teTemp     float64
	tiTemp     float64
	thetaDeg   []float64
	gammaE     float64
	gammaI     float64
	zMean      float64
	plotMode   string
	outputPath string
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

// modeResult normalizes the two solver result shapes for printing: named mode
// grids plus advisory warnings.
type modeResult struct {
	names    []string
	grids    []*dispersion.Grid
	warnings []dispersion.Warning
}

type model struct {
	desc  string
	solve func(dispersion.Inputs) (*modeResult, error)
}

var models = map[string]model{
	"hirose": {
		desc: "Hirose 2004 two-fluid relation, cold ions (cubic in w^2)",
		solve: func(in dispersion.Inputs) (*modeResult, error) {
			ms, err := dispersion.Hirose(in)
			if err != nil {
				return nil, err
			}
			return &modeResult{
				names:    []string{"acoustic_mode", "alfven_mode", "fast_mode"},
				grids:    []*dispersion.Grid{ms.Acoustic, ms.Alfven, ms.Fast},
				warnings: ms.Warnings,
			}, nil
		},
	},
	"hollweg": {
		desc: "Hollweg 1999 relation (cubic in w^2)",
		solve: func(in dispersion.Inputs) (*modeResult, error) {
			ms, err := dispersion.Hollweg(in)
			if err != nil {
				return nil, err
			}
			return &modeResult{
				names:    []string{"acoustic_mode", "alfven_mode", "fast_mode"},
				grids:    []*dispersion.Grid{ms.Acoustic, ms.Alfven, ms.Fast},
				warnings: ms.Warnings,
			}, nil
		},
	},
	"alfven": {
		desc: "closed-form two-fluid Alfven branch",
		solve: func(in dispersion.Inputs) (*modeResult, error) {
			res, err := dispersion.Alfven(in)
			if err != nil {
				return nil, err
			}
			return &modeResult{
				names:    []string{"omega"},
				grids:    []*dispersion.Grid{res.Omega},
				warnings: res.Warnings,
			}, nil
		},
	},
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "twofluid",
		Short: "two-fluid plasma dispersion relation solvers",
	}

	solveCmd := &cobra.Command{
		Use:   "solve [model]",
		Short: "solve a dispersion relation over a (k, theta) grid",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSolve,
	}
	addInputFlags(solveCmd)
	solveCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write results to a .json or .csv file")

	plotCmd := &cobra.Command{
		Use:   "plot [model]",
		Short: "plot mode frequency against wavenumber",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlot,
	}
	addInputFlags(plotCmd)
	plotCmd.Flags().StringVar(&plotMode, "mode", "", "plot a single mode (default: all)")

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list available dispersion models",
		Run: func(cmd *cobra.Command, args []string) {
			names := make([]string, 0, len(models))
			for name := range models {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("  %-8s %s\n", name, models[name].desc)
			}
			fmt.Printf("\npresets: %s\n", strings.Join(scenario.ListPresets(), ", "))
		},
	}

	rootCmd.AddCommand(solveCmd, plotCmd, modelsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a named preset scenario")
	cmd.Flags().StringVar(&ionName, "ion", "p+", "ion species identifier")
	cmd.Flags().Float64Var(&bField, "b", 8.3e-9, "magnetic field (T)")
	cmd.Flags().Float64SliceVar(&kValues, "k", nil, "wavenumbers (rad/m)")
	cmd.Flags().Float64Var(&niDensity, "ni", 5, "ion number density (1/m^3)")
	cmd.Flags().Float64Var(&teTemp, "te", 1.6e6, "electron temperature (K)")
	cmd.Flags().Float64Var(&tiTemp, "ti", 4.0e5, "ion temperature (K)")
	cmd.Flags().Float64SliceVar(&thetaDeg, "theta", nil, "propagation angles (deg)")
	cmd.Flags().Float64Var(&gammaE, "gamma-e", 0, "electron adiabatic index (default 1)")
	cmd.Flags().Float64Var(&gammaI, "gamma-i", 0, "ion adiabatic index (default 3)")
	cmd.Flags().Float64Var(&zMean, "z-mean", 0, "mean ionization state override")
}

// buildScenario resolves the parameter source precedence: preset, then config
// file, then explicit flags.
func buildScenario(cmd *cobra.Command, args []string) (*scenario.Scenario, error) {
	s := scenario.Default()
	if preset != "" {
		s = scenario.Preset(preset)
		if s == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)",
				preset, scenario.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := scenario.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load scenario: %w", err)
		}
		s = loaded
	}

	if len(args) == 1 {
		s.Model = args[0]
	}
	if cmd.Flags().Changed("ion") {
		s.Ion = ionName
	}
	if cmd.Flags().Changed("b") {
		s.B = scenario.Value{Value: bField, Unit: "T"}
	}
	if cmd.Flags().Changed("k") {
		s.K = scenario.Axis{Values: kValues, Unit: "rad/m"}
	}
	if cmd.Flags().Changed("ni") {
		s.Ni = scenario.Value{Value: niDensity, Unit: "1/m^3"}
	}
	if cmd.Flags().Changed("te") {
		s.Te = scenario.Value{Value: teTemp, Unit: "K"}
	}
	if cmd.Flags().Changed("ti") {
		s.Ti = scenario.Value{Value: tiTemp, Unit: "K"}
	}
	if cmd.Flags().Changed("theta") {
		s.Theta = scenario.Axis{Values: thetaDeg, Unit: "deg"}
	}
	if cmd.Flags().Changed("gamma-e") {
		s.GammaE = gammaE
	}
	if cmd.Flags().Changed("gamma-i") {
		s.GammaI = gammaI
	}
	if cmd.Flags().Changed("z-mean") {
		z := zMean
		s.ZMean = &z
	}
	// Hirose assumes cold ions; drop the default T_i rather than make the
	// default scenario unusable for it.
	if s.Model == "hirose" && !cmd.Flags().Changed("ti") && configFile == "" {
		s.Ti = scenario.Value{}
	}
	return s, nil
}

func runModel(s *scenario.Scenario) (*modeResult, error) {
	m, ok := models[s.Model]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s (see 'twofluid models')", s.Model)
	}
	in, err := s.Inputs()
	if err != nil {
		return nil, err
	}
	return m.solve(in)
}

func runSolve(cmd *cobra.Command, args []string) error {
	s, err := buildScenario(cmd, args)
	if err != nil {
		return err
	}
	res, err := runModel(s)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("%s dispersion (ion %s)", s.Model, s.Ion)))
	kSI, thetaSI, err := gridAxes(s)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintf(w, "k [rad/m]\ttheta [rad]\t%s\n", strings.Join(res.names, " [rad/s]\t")+" [rad/s]")
	for i, kv := range kSI {
		for j, th := range thetaSI {
			row := make([]string, 0, len(res.grids))
			for _, g := range res.grids {
				row = append(row, formatOmega(g.At(i, j)))
			}
			fmt.Fprintf(w, "%.6g\t%.6g\t%s\n", kv, th, strings.Join(row, "\t"))
		}
	}
	w.Flush()

	for _, warning := range res.warnings {
		fmt.Println(warnStyle.Render("warning: " + warning.String()))
	}

	if outputPath != "" {
		ds, err := export.NewDataset(s.Model, s.Ion, kSI, thetaSI, res.names, res.grids, res.warnings)
		if err != nil {
			return err
		}
		if err := export.Write(outputPath, ds); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outputPath)
	}
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	s, err := buildScenario(cmd, args)
	if err != nil {
		return err
	}
	res, err := runModel(s)
	if err != nil {
		return err
	}
	kSI, _, err := gridAxes(s)
	if err != nil {
		return err
	}
	if len(kSI) < 2 {
		return fmt.Errorf("plotting needs at least 2 wavenumbers, got %d", len(kSI))
	}

	for idx, name := range res.names {
		if plotMode != "" && plotMode != name {
			continue
		}
		data := make([]float64, len(kSI))
		for i := range kSI {
			data[i] = math.Log10(cmplx.Abs(res.grids[idx].At(i, 0)))
		}
		caption := fmt.Sprintf("%s: log10 |w| vs k in [%.3g, %.3g] rad/m (first theta)",
			name, kSI[0], kSI[len(kSI)-1])
		graph := asciigraph.Plot(data,
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Println(graphStyle.Render(graph))
	}

	for _, warning := range res.warnings {
		fmt.Println(warnStyle.Render("warning: " + warning.String()))
	}
	return nil
}

// gridAxes recomputes the SI k and theta axes for labeling output rows.
func gridAxes(s *scenario.Scenario) ([]float64, []float64, error) {
	in, err := s.Inputs()
	if err != nil {
		return nil, nil, err
	}
	kSI, err := in.K.SI(units.Wavenumber)
	if err != nil {
		return nil, nil, err
	}
	thetaSI, err := in.Theta.SI(units.Angle)
	if err != nil {
		return nil, nil, err
	}
	return kSI, thetaSI, nil
}

func formatOmega(w complex128) string {
	if math.Abs(imag(w)) < 1e-12*math.Abs(real(w)) || imag(w) == 0 {
		return fmt.Sprintf("%.6g", real(w))
	}
	return fmt.Sprintf("%.6g%+.3gi", real(w), imag(w))
}
