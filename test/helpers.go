package test

import (
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/outofforest/zorder/types"
)

// QuadtreeMesh returns lower-left corners of leaf cells of a quadtree covering the square of the size
// placed at origin. Every cell is split until minLevel is reached, cells containing focus are split
// further until maxLevel is reached.
func QuadtreeMesh(origin types.Point, size float64, minLevel, maxLevel int, focus types.Point) []types.Point {
	points := []types.Point{}

	var split func(corner types.Point, size float64, level int)
	split = func(corner types.Point, size float64, level int) {
		if level >= maxLevel || (level >= minLevel && !contains(corner, size, focus)) {
			points = append(points, corner)
			return
		}

		half := size / 2
		split(types.Point{X: corner.X, Y: corner.Y + half}, half, level+1)
		split(types.Point{X: corner.X + half, Y: corner.Y + half}, half, level+1)
		split(types.Point{X: corner.X, Y: corner.Y}, half, level+1)
		split(types.Point{X: corner.X + half, Y: corner.Y}, half, level+1)
	}
	split(origin, size, 0)

	return points
}

// SortPoints returns sorted copy of points.
func SortPoints(points []types.Point) []types.Point {
	sorted := append([]types.Point{}, points...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})
	return sorted
}

// Sort returns sorted copy of values.
func Sort[T constraints.Ordered](values []T) []T {
	sorted := append([]T{}, values...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	return sorted
}

func contains(corner types.Point, size float64, p types.Point) bool {
	return p.X >= corner.X && p.X < corner.X+size && p.Y >= corner.Y && p.Y < corner.Y+size
}
