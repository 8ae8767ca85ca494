package particles

import "fmt"

// Category classifies a resolved species.
type Category int

const (
	CategoryElement Category = iota // neutral atom, no charge state
	CategoryIon
	CategoryElectron
)

func (c Category) String() string {
	switch c {
	case CategoryElement:
		return "element"
	case CategoryIon:
		return "ion"
	case CategoryElectron:
		return "electron"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Species holds the resolved physical properties of a particle.
type Species struct {
	Symbol    string  // canonical identifier, e.g. "p+", "He-4 2+"
	Mass      float64 // kg
	Charge    int     // charge number Z (signed)
	HasCharge bool    // false for neutral elements with no stated charge
	Category  Category
}

// IsIon reports whether the species is a charged ion.
func (s *Species) IsIon() bool { return s.Category == CategoryIon }

// IsElement reports whether the species is a neutral element.
func (s *Species) IsElement() bool { return s.Category == CategoryElement }

func (s *Species) String() string { return s.Symbol }

// Ion is the sum type accepted for solver ion arguments: either a raw textual
// identifier ([Named]) or an already-resolved *[Species].
type Ion interface {
	resolve() (*Species, error)
}

type named string

// Named wraps a textual particle identifier for later resolution.
func Named(identifier string) Ion { return named(identifier) }

func (n named) resolve() (*Species, error) { return Parse(string(n)) }

func (s *Species) resolve() (*Species, error) { return s, nil }

// Resolve reduces an Ion to its Species, parsing textual identifiers once at
// entry.
func Resolve(ion Ion) (*Species, error) {
	if ion == nil {
		return nil, ErrNil
	}
	return ion.resolve()
}
