package particles

import "errors"

var (
	// ErrUnknown indicates an identifier that does not resolve to any
	// known particle.
	ErrUnknown = errors.New("particles: unknown particle identifier")

	// ErrNil indicates a nil Ion argument.
	ErrNil = errors.New("particles: nil ion")
)
