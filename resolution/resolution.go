// Package resolution infers the finest uniform grid spacing of an irregular point set.
package resolution

import (
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/outofforest/zorder/group"
	"github.com/outofforest/zorder/types"
)

// Analyze returns the finest spacing along x and y axes of points given by their coordinates.
//
// Spacing along x is the smallest distance between neighbouring points lying on the same horizontal
// line, spacing along y is computed the same way for vertical lines. If no line contains two points
// the axis is unconstrained.
func Analyze(xs, ys []float64) (types.Resolution, error) {
	if len(xs) != len(ys) {
		return types.Resolution{}, errors.Wrapf(types.ErrInvalidInput,
			"number of x coordinates (%d) differs from number of y coordinates (%d)", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return types.Resolution{}, errors.Wrap(types.ErrInvalidInput, "no points")
	}
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			return types.Resolution{}, errors.Wrapf(types.ErrInvalidInput,
				"point %d has non-finite coordinates (%v, %v)", i, xs[i], ys[i])
		}
	}

	x, err := finest(xs, ys)
	if err != nil {
		return types.Resolution{}, err
	}
	y, err := finest(ys, xs)
	if err != nil {
		return types.Resolution{}, err
	}
	return types.Resolution{X: x, Y: y}, nil
}

// finest returns the smallest gap between values of along, among points sharing the same value of by.
func finest(along, by []float64) (types.Spacing, error) {
	var spacing types.Spacing
	for ids := range group.ByValue(by) {
		if len(ids) < 2 {
			continue
		}

		sort.SliceStable(ids, func(i, j int) bool {
			return along[ids[i]] < along[ids[j]]
		})
		for i := 1; i < len(ids); i++ {
			step := along[ids[i]] - along[ids[i-1]]
			if step == 0 {
				return types.Spacing{}, errors.Wrapf(types.ErrCoincidentPoints,
					"points %d and %d share coordinates", ids[i-1], ids[i])
			}
			if !spacing.Constrained || step < spacing.Step {
				spacing = types.Spacing{Step: step, Constrained: true}
			}
		}
	}
	return spacing, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
