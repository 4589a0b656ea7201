// Package zorder reorders nodes of variable-resolution 2D meshes along the Morton (Z-order) curve.
//
// Nodes are projected onto the grid of the finest spacing found in the mesh and sorted by the smallest
// Morton code of the cells they occupy, so nodes close to each other in space end up close to each other
// in memory.
package zorder

import (
	"github.com/pkg/errors"

	"github.com/outofforest/zorder/lut"
	"github.com/outofforest/zorder/raster"
	"github.com/outofforest/zorder/types"
)

// Permutation returns ids of points in Morton order: perm[rank] is the id of the point placed at rank.
func Permutation(points []types.Point) ([]int, error) {
	if len(points) == 0 {
		return []int{}, nil
	}

	grid, err := raster.Rasterize(points)
	if err != nil {
		return nil, err
	}
	table, err := lut.Build(grid.Cells, grid.Sentinel)
	if err != nil {
		return nil, err
	}
	return Invert(table[:grid.Sentinel]), nil
}

// Reorder returns copies of points and payload sorted in Morton order. Inputs are not modified.
func Reorder[T any](points []types.Point, payload []T) ([]types.Point, []T, error) {
	if len(points) != len(payload) {
		return nil, nil, errors.Wrapf(types.ErrInvalidInput, "%d points but %d payload items",
			len(points), len(payload))
	}

	perm, err := Permutation(points)
	if err != nil {
		return nil, nil, err
	}
	return Apply(points, perm), Apply(payload, perm), nil
}

// Apply returns new slice where item i is values[perm[i]].
func Apply[T any](values []T, perm []int) []T {
	result := make([]T, len(perm))
	for i, id := range perm {
		result[i] = values[id]
	}
	return result
}

// Invert returns the inverse of permutation perm.
func Invert(perm []int) []int {
	inv := make([]int, len(perm))
	for i, rank := range perm {
		inv[rank] = i
	}
	return inv
}
