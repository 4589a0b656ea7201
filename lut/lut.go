// Package lut builds lookup tables mapping point ids to their rank along the Morton curve.
package lut

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/outofforest/zorder/morton"
	"github.com/outofforest/zorder/types"
)

// Build returns lookup table of length sentinel+1 mapping id stored in cells to its rank.
// Rank of an id is the position of its lowest-coded cell among lowest-coded cells of all the ids.
// Sentinel marks unoccupied cells and is mapped onto itself.
func Build(cells types.Dense[int], sentinel int) ([]int, error) {
	if sentinel < 0 {
		return nil, errors.Wrapf(types.ErrInvalidInput, "negative sentinel %d", sentinel)
	}

	codes, err := morton.Codes(cells.Shape)
	if err != nil {
		return nil, err
	}
	if len(codes.Data) != len(cells.Data) {
		return nil, errors.Wrapf(types.ErrInvalidInput, "grid of shape %v holds %d cells",
			cells.Shape, len(cells.Data))
	}

	maxCode := lo.Max(codes.Data)
	if maxCode == math.MaxUint64 {
		return nil, errors.Wrapf(types.ErrCapacity, "no room for sentinel code in grid of shape %v",
			cells.Shape)
	}
	codeSentinel := maxCode + 1

	minCodes := make([]uint64, sentinel+1)
	for i := range minCodes {
		minCodes[i] = math.MaxUint64
	}
	for offset, id := range cells.Data {
		if id < 0 || id > sentinel {
			return nil, errors.Wrapf(types.ErrInvalidInput, "cell %d holds id %d outside [0, %d]",
				offset, id, sentinel)
		}
		if code := codes.Data[offset]; code < minCodes[id] {
			minCodes[id] = code
		}
	}
	minCodes[sentinel] = codeSentinel

	order := lo.Range(sentinel + 1)
	sort.Slice(order, func(i, j int) bool {
		ci, cj := minCodes[order[i]], minCodes[order[j]]
		if ci != cj {
			return ci < cj
		}
		return order[i] < order[j]
	})

	table := make([]int, sentinel+1)
	for rank, id := range order {
		table[id] = rank
	}
	table[sentinel] = sentinel

	if err := Verify(table); err != nil {
		return nil, err
	}
	return table, nil
}

// Verify checks that table maps its last entry onto itself and is a permutation of the other entries.
func Verify(table []int) error {
	if len(table) == 0 {
		return errors.Wrap(types.ErrInvariant, "empty lookup table")
	}

	sentinel := len(table) - 1
	if table[sentinel] != sentinel {
		return errors.Wrapf(types.ErrInvariant, "sentinel %d mapped to %d", sentinel, table[sentinel])
	}

	taken := make([]bool, sentinel)
	for id, rank := range table[:sentinel] {
		if rank < 0 || rank >= sentinel {
			return errors.Wrapf(types.ErrInvariant, "id %d mapped to rank %d outside [0, %d)", id, rank, sentinel)
		}
		if taken[rank] {
			return errors.Wrapf(types.ErrInvariant, "rank %d assigned twice", rank)
		}
		taken[rank] = true
	}
	return nil
}
