// Package morton computes Morton (Z-order) codes of N-dimensional grid cells.
//
// Code of a cell is built by interleaving bits of its axis indices. Axis 0 takes the most significant
// bit of every interleaved group and the last axis the least significant one, so sorting codes of a
// row-major grid visits its cells quadrant by quadrant.
package morton

import (
	"math/bits"

	"github.com/pkg/errors"

	"github.com/outofforest/zorder/types"
)

const (
	// stages is the number of dilation stages needed to spread 32 bits.
	stages  = 6
	maxDims = types.MaxCodeBits
)

// masks[d][k] keeps chunks of 1<<k bits placed at stride d<<k.
var masks = buildMasks()

func buildMasks() [maxDims + 1][stages]uint64 {
	var m [maxDims + 1][stages]uint64
	for d := 2; d <= maxDims; d++ {
		for k := range stages {
			chunk := uint64(1)<<(1<<k) - 1
			stride := d << k
			for pos := 0; pos < types.MaxCodeBits; pos += stride {
				m[d][k] |= chunk << pos
			}
		}
	}
	return m
}

// Bits returns the number of bits required to represent indices 0..extent-1.
func Bits(extent int) uint64 {
	if extent <= 1 {
		return 0
	}
	return uint64(bits.Len64(uint64(extent - 1)))
}

// Capacity returns the number of bits consumed by interleaved codes of the shape.
// Error wrapping types.ErrCapacity is returned if the result exceeds 64 bits.
func Capacity(shape types.Shape) (uint64, error) {
	if err := shape.Validate(); err != nil {
		return 0, err
	}

	d := uint64(len(shape))
	if d == 1 {
		return Bits(shape[0]), nil
	}

	var total uint64
	for i, extent := range shape {
		b := Bits(extent)
		if b == 0 {
			continue
		}
		total += b + (d-1)*(b-1) + (d - 1 - uint64(i))
	}
	if total > types.MaxCodeBits {
		return 0, errors.Wrapf(types.ErrCapacity, "shape %v requires %d bits", shape, total)
	}
	return total, nil
}

// Dilate inserts d-1 zero bits between consecutive bits of v.
// Bits which would be moved beyond 64th position are lost, use Capacity to detect that.
func Dilate(v uint64, d int) uint64 {
	b := bits.Len64(v)
	if d <= 1 || b <= 1 {
		return v
	}
	if d > maxDims {
		return v & 1
	}

	shift := d - 1
	for k := stages - 1; k >= 0; k-- {
		chunk := 1 << k
		if chunk >= b {
			continue
		}
		v = (v | v<<(chunk*shift)) & masks[d][k]
	}
	return v
}

// Undilate is the inverse of Dilate. Bits other than every d-th one are ignored.
func Undilate(v uint64, d int) uint64 {
	if d <= 1 {
		return v
	}
	if d > maxDims {
		return v & 1
	}

	shift := d - 1
	v &= masks[d][0]
	for k := range stages - 1 {
		v = (v | v>>((1<<k)*shift)) & masks[d][k+1]
	}
	return v
}

// Encode returns the code of the cell at index.
func Encode(index []uint64) uint64 {
	d := len(index)
	var code uint64
	for i, v := range index {
		code |= Dilate(v, d) << (d - 1 - i)
	}
	return code
}

// Decode returns the d-dimensional index of the cell having code.
func Decode(code uint64, d int) []uint64 {
	index := make([]uint64, d)
	for i := range index {
		index[i] = Undilate(code>>(d-1-i), d)
	}
	return index
}

// Codes returns dense array of the shape where each cell holds its Morton code.
func Codes(shape types.Shape) (types.Dense[uint64], error) {
	if _, err := Capacity(shape); err != nil {
		return types.Dense[uint64]{}, err
	}

	codes := types.NewDense[uint64](shape)
	d := len(shape)
	if d == 1 {
		for i := range codes.Data {
			codes.Data[i] = uint64(i)
		}
		return codes, nil
	}

	// Dilated and shifted indices of each axis, broadcast over the grid below.
	axes := make([][]uint64, d)
	for i, extent := range shape {
		axis := make([]uint64, extent)
		for v := range axis {
			axis[v] = Dilate(uint64(v), d) << (d - 1 - i)
		}
		axes[i] = axis
	}

	index := make([]int, d)
	for offset := range codes.Data {
		var code uint64
		for i, v := range index {
			code |= axes[i][v]
		}
		codes.Data[offset] = code

		for i := d - 1; i >= 0; i-- {
			index[i]++
			if index[i] < shape[i] {
				break
			}
			index[i] = 0
		}
	}

	return codes, nil
}
