// Package raster projects mesh points onto the dense grid of the finest mesh resolution.
package raster

import (
	"math"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/outofforest/zorder/morton"
	"github.com/outofforest/zorder/resolution"
	"github.com/outofforest/zorder/types"
)

// maxExtent is the largest number of rows or columns a grid may have.
const maxExtent = 1 << 32

// Grid is the rasterized point set. Rows go from the largest y down, columns from the smallest x up.
type Grid struct {
	// Cells holds point id or Sentinel if cell is unoccupied.
	Cells types.Dense[int]

	// Sentinel equals to the number of points.
	Sentinel   int
	Origin     types.Point
	Resolution types.Resolution
}

// Cell returns row and column of the cell containing point.
func (g Grid) Cell(p types.Point) (int, int) {
	return index(g.Origin.Y-p.Y, g.Resolution.Y), index(p.X-g.Origin.X, g.Resolution.X)
}

// Rasterize builds a grid at the finest resolution found in points and stores the id of each point
// in the cell it falls into.
func Rasterize(points []types.Point) (Grid, error) {
	xs := lo.Map(points, func(p types.Point, _ int) float64 { return p.X })
	ys := lo.Map(points, func(p types.Point, _ int) float64 { return p.Y })

	res, err := resolution.Analyze(xs, ys)
	if err != nil {
		return Grid{}, err
	}

	g := Grid{
		Sentinel:   len(points),
		Origin:     types.Point{X: lo.Min(xs), Y: lo.Max(ys)},
		Resolution: res,
	}

	rows, err := extent(g.Origin.Y-lo.Min(ys), res.Y)
	if err != nil {
		return Grid{}, errors.WithMessage(err, "y axis")
	}
	cols, err := extent(lo.Max(xs)-g.Origin.X, res.X)
	if err != nil {
		return Grid{}, errors.WithMessage(err, "x axis")
	}

	shape := types.Shape{rows, cols}
	if _, err := morton.Capacity(shape); err != nil {
		return Grid{}, err
	}

	g.Cells = types.NewDense[int](shape)
	g.Cells.Fill(g.Sentinel)
	for id, p := range points {
		row, col := g.Cell(p)
		offset := g.Cells.Offset(row, col)
		if prev := g.Cells.Data[offset]; prev != g.Sentinel {
			return Grid{}, errors.Wrapf(types.ErrCollision, "points %d and %d fall into cell (%d, %d)",
				prev, id, row, col)
		}
		g.Cells.Data[offset] = id
	}

	return g, nil
}

func index(distance float64, spacing types.Spacing) int {
	if !spacing.Constrained {
		return 0
	}
	return int(math.Floor(distance / spacing.Step))
}

func extent(span float64, spacing types.Spacing) (int, error) {
	if !spacing.Constrained {
		return 1, nil
	}
	cells := math.Floor(span/spacing.Step) + 1
	if cells > maxExtent {
		return 0, errors.Wrapf(types.ErrCapacity, "span %v at step %v requires %v cells", span, spacing.Step,
			cells)
	}
	return int(cells), nil
}
