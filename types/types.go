package types

import (
	"github.com/pkg/errors"
)

const (
	// MaxCodeBits is the number of bits available for a Morton code.
	MaxCodeBits = 64
)

type (
	// Shape is the extent of a dense grid along each axis.
	Shape []int

	// Point is the anchor of one mesh cell. Identity of a point is its position in the point set.
	Point struct {
		X float64
		Y float64
	}

	// Spacing is the finest step observed along one axis.
	Spacing struct {
		Step float64

		// Constrained is false if no two points share a line along this axis.
		Constrained bool
	}

	// Resolution stores the finest spacing along both axes of a point set.
	Resolution struct {
		X Spacing
		Y Spacing
	}
)

// Size returns the number of cells in the grid of the shape.
func (s Shape) Size() int {
	size := 1
	for _, e := range s {
		size *= e
	}
	return size
}

// Validate checks that shape describes a non-empty grid.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return errors.Wrap(ErrInvalidInput, "shape has no axes")
	}
	for i, e := range s {
		if e <= 0 {
			return errors.Wrapf(ErrInvalidInput, "axis %d has non-positive extent %d", i, e)
		}
	}
	return nil
}

// Dims returns the number of axes.
func (s Shape) Dims() int {
	return len(s)
}
