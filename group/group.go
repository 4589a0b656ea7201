// Package group partitions sequences into groups of positions sharing the same value.
package group

import (
	"cmp"
	"iter"
	"sort"
)

// ByValue returns iterator over groups of positions holding equal values.
// Groups are produced in ascending order of value and positions inside a group are ascending.
func ByValue[T cmp.Ordered](values []T) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		order := make([]int, len(values))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(i, j int) bool {
			return cmp.Less(values[order[i]], values[order[j]])
		})

		for start := 0; start < len(order); {
			end := start + 1
			for end < len(order) && cmp.Compare(values[order[start]], values[order[end]]) == 0 {
				end++
			}
			if !yield(order[start:end:end]) {
				return
			}
			start = end
		}
	}
}
