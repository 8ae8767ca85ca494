package units

import "fmt"

// Quantity is a scalar or 1-D physical value tagged with its unit. The zero
// value is "unset" and reports IsZero() == true; solvers use this to detect
// omitted optional arguments.
type Quantity struct {
	values []float64
	unit   Unit
}

// Scalar wraps a single value with its unit.
func Scalar(v float64, u Unit) Quantity {
	return Quantity{values: []float64{v}, unit: u}
}

// Vector wraps a 1-D sequence with its unit. The slice is copied. A length-1
// vector is equivalent to a scalar everywhere (squeeze semantics).
func Vector(vs []float64, u Unit) Quantity {
	c := make([]float64, len(vs))
	copy(c, vs)
	return Quantity{values: c, unit: u}
}

// IsZero reports whether the quantity was never set.
func (q Quantity) IsZero() bool { return q.values == nil }

// Unit returns the unit the quantity was constructed with.
func (q Quantity) Unit() Unit { return q.unit }

// Len returns the number of elements.
func (q Quantity) Len() int { return len(q.values) }

// SI converts every element to the SI base unit of the requested dimension
// family. It fails with ErrDimension if the quantity's unit belongs to a
// different family, and with ErrEmpty for an unset quantity.
func (q Quantity) SI(want Dimension) ([]float64, error) {
	if q.IsZero() {
		return nil, ErrEmpty
	}
	if q.unit.Dim != want {
		return nil, fmt.Errorf("%w: have %s (%q), want %s",
			ErrDimension, q.unit.Dim, q.unit.Symbol, want)
	}
	out := make([]float64, len(q.values))
	for i, v := range q.values {
		out[i] = v * q.unit.Factor
	}
	return out, nil
}

// ScalarSI converts to SI like SI, additionally requiring the quantity to
// squeeze to a single value. A multi-element quantity fails with ErrNotScalar
// reporting its length.
func (q Quantity) ScalarSI(want Dimension) (float64, error) {
	vs, err := q.SI(want)
	if err != nil {
		return 0, err
	}
	if len(vs) != 1 {
		return 0, fmt.Errorf("%w: got %d values", ErrNotScalar, len(vs))
	}
	return vs[0], nil
}

func (q Quantity) String() string {
	if q.IsZero() {
		return "<unset>"
	}
	if len(q.values) == 1 {
		return fmt.Sprintf("%g %s", q.values[0], q.unit.Symbol)
	}
	return fmt.Sprintf("%v %s", q.values, q.unit.Symbol)
}
