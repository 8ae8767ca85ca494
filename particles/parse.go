package particles

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// CODATA 2018 masses, kg.
const (
	massElectron = 9.1093837015e-31
	massProton   = 1.67262192369e-27
	massDeuteron = 3.3435837724e-27
	massTriton   = 5.0073567446e-27
	massHelion   = 5.0064127796e-27
	massAlpha    = 6.6446573357e-27

	amu = 1.66053906660e-27
)

// Exact atomic masses for light isotopes, in u.
var isotopeMass = map[string]float64{
	"H-1":  1.00782503207,
	"H-2":  2.01410177785,
	"H-3":  3.01604928199,
	"He-3": 3.01602932007,
	"He-4": 4.00260325413,
}

// Standard atomic weights, in u.
var elementMass = map[string]float64{
	"H":  1.008,
	"He": 4.002602,
	"Li": 6.94,
	"Be": 9.0121831,
	"B":  10.81,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"F":  18.998403163,
	"Ne": 20.1797,
	"Na": 22.98976928,
	"Mg": 24.305,
	"Al": 26.9815385,
	"Si": 28.085,
	"P":  30.973761998,
	"S":  32.06,
	"Cl": 35.45,
	"Ar": 39.948,
	"K":  39.0983,
	"Ca": 40.078,
	"Fe": 55.845,
	"Ni": 58.6934,
	"Kr": 83.798,
	"Xe": 131.293,
	"W":  183.84,
}

// Bare nucleus and lepton masses for the fully stripped light ions, so that
// e.g. "p+" carries the CODATA proton mass rather than H-1 minus one electron
// mass.
var nucleusMass = map[string]float64{
	"H-1 1+":  massProton,
	"H-2 1+":  massDeuteron,
	"H-3 1+":  massTriton,
	"He-3 2+": massHelion,
	"He-4 2+": massAlpha,
}

var aliases = map[string]string{
	"p":         "H-1 1+",
	"p+":        "H-1 1+",
	"proton":    "H-1 1+",
	"D":         "H-2",
	"D+":        "H-2 1+",
	"deuteron":  "H-2 1+",
	"deuterium": "H-2",
	"T":         "H-3",
	"T+":        "H-3 1+",
	"triton":    "H-3 1+",
	"tritium":   "H-3",
	"alpha":     "He-4 2+",
	"helion":    "He-3 2+",
}

// Parse resolves a particle identifier to a Species. It fails with ErrUnknown
// for identifiers it cannot resolve.
func Parse(identifier string) (*Species, error) {
	id := strings.TrimSpace(identifier)
	if id == "" {
		return nil, fmt.Errorf("%w: empty identifier", ErrUnknown)
	}
	if id == "e-" || id == "electron" {
		return &Species{
			Symbol:    "e-",
			Mass:      massElectron,
			Charge:    -1,
			HasCharge: true,
			Category:  CategoryElectron,
		}, nil
	}
	if canonical, ok := aliases[id]; ok {
		id = canonical
	}

	sym, rest := splitSymbol(id)
	if _, ok := elementMass[sym]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, identifier)
	}

	massNum, rest, err := splitIsotope(rest)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, identifier)
	}
	charge, hasCharge, err := parseCharge(rest)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, identifier)
	}

	atomic, err := atomicMass(sym, massNum)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, identifier)
	}

	sp := &Species{
		Symbol:    canonicalSymbol(sym, massNum, charge, hasCharge),
		Charge:    charge,
		HasCharge: hasCharge,
		Category:  CategoryElement,
	}
	if hasCharge && charge != 0 {
		sp.Category = CategoryIon
	}
	if m, ok := nucleusMass[sp.Symbol]; ok {
		sp.Mass = m
	} else {
		sp.Mass = atomic - float64(charge)*massElectron
	}
	return sp, nil
}

// splitSymbol takes the leading element symbol (capital letter plus optional
// lowercase letters) off the identifier.
func splitSymbol(id string) (sym, rest string) {
	i := 0
	for i < len(id) && unicode.IsLetter(rune(id[i])) {
		i++
	}
	return id[:i], id[i:]
}

// splitIsotope consumes an optional "-<massnumber>" suffix. A dash with no
// digits is left for the charge parser ("H-" is the hydrogen anion).
func splitIsotope(rest string) (massNum int, remainder string, err error) {
	if !strings.HasPrefix(rest, "-") {
		return 0, rest, nil
	}
	i := 1
	for i < len(rest) && unicode.IsDigit(rune(rest[i])) {
		i++
	}
	if i == 1 {
		return 0, rest, nil
	}
	n, err := strconv.Atoi(rest[1:i])
	if err != nil {
		return 0, "", err
	}
	return n, rest[i:], nil
}

// parseCharge handles the accepted charge suffixes: "", "+", "-", "++", "--",
// "2+", "+2" and their space-separated forms.
func parseCharge(rest string) (charge int, hasCharge bool, err error) {
	s := strings.TrimSpace(rest)
	if s == "" {
		return 0, false, nil
	}
	if allSame(s, '+') {
		return len(s), true, nil
	}
	if allSame(s, '-') {
		return -len(s), true, nil
	}
	sign := 0
	digits := ""
	switch {
	case strings.HasSuffix(s, "+"):
		sign, digits = 1, strings.TrimSuffix(s, "+")
	case strings.HasSuffix(s, "-"):
		sign, digits = -1, strings.TrimSuffix(s, "-")
	case strings.HasPrefix(s, "+"):
		sign, digits = 1, strings.TrimPrefix(s, "+")
	case strings.HasPrefix(s, "-"):
		sign, digits = -1, strings.TrimPrefix(s, "-")
	default:
		return 0, false, fmt.Errorf("malformed charge %q", s)
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 0, false, fmt.Errorf("malformed charge %q", s)
	}
	return sign * n, true, nil
}

func allSame(s string, c byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != c {
			return false
		}
	}
	return len(s) > 0
}

func atomicMass(sym string, massNum int) (float64, error) {
	if massNum == 0 {
		return elementMass[sym] * amu, nil
	}
	key := fmt.Sprintf("%s-%d", sym, massNum)
	if m, ok := isotopeMass[key]; ok {
		return m * amu, nil
	}
	// No tabulated mass for this isotope; the integer mass number is a
	// sub-percent approximation adequate for dispersion work.
	return float64(massNum) * amu, nil
}

func canonicalSymbol(sym string, massNum, charge int, hasCharge bool) string {
	s := sym
	if massNum != 0 {
		s = fmt.Sprintf("%s-%d", sym, massNum)
	}
	if !hasCharge {
		return s
	}
	switch {
	case charge == 0:
		return s + " 0+"
	case charge > 0:
		return fmt.Sprintf("%s %d+", s, charge)
	default:
		return fmt.Sprintf("%s %d-", s, -charge)
	}
}
