package types

import "github.com/pkg/errors"

var (
	// ErrInvalidInput is returned when arguments are malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCapacity is returned when interleaved codes of a shape do not fit into 64 bits.
	ErrCapacity = errors.New("morton code capacity exceeded")

	// ErrCoincidentPoints is returned when two points have identical coordinates.
	ErrCoincidentPoints = errors.New("coincident points")

	// ErrCollision is returned when two points are projected onto the same grid cell.
	ErrCollision = errors.New("raster cell collision")

	// ErrInvariant is returned when lookup table is not a bijection.
	ErrInvariant = errors.New("lookup table invariant violated")
)
