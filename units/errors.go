package units

import "errors"

var (
	// ErrDimension indicates a quantity whose unit belongs to the wrong
	// dimension family for the requested conversion.
	ErrDimension = errors.New("units: incompatible dimension")

	// ErrNotScalar indicates a genuinely multi-valued quantity where a
	// single value is required.
	ErrNotScalar = errors.New("units: quantity is not single valued")

	// ErrEmpty indicates a zero-value Quantity with no data.
	ErrEmpty = errors.New("units: empty quantity")

	// ErrUnknownUnit indicates an unrecognized unit symbol.
	ErrUnknownUnit = errors.New("units: unknown unit symbol")
)
