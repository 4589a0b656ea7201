package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	requireT := require.New(t)

	requireT.Equal(24, Shape{2, 3, 4}.Size())
	requireT.Equal(3, Shape{2, 3, 4}.Dims())
	requireT.NoError(Shape{1}.Validate())
	requireT.ErrorIs(Shape{}.Validate(), ErrInvalidInput)
	requireT.ErrorIs(Shape{3, -1}.Validate(), ErrInvalidInput)
}

func TestDense(t *testing.T) {
	requireT := require.New(t)

	d := NewDense[int](Shape{2, 3, 4})
	requireT.Len(d.Data, 24)
	requireT.Equal(0, d.Offset(0, 0, 0))
	requireT.Equal(1, d.Offset(0, 0, 1))
	requireT.Equal(4, d.Offset(0, 1, 0))
	requireT.Equal(12, d.Offset(1, 0, 0))
	requireT.Equal(23, d.Offset(1, 2, 3))

	d.Set(7, 1, 2, 0)
	requireT.Equal(7, d.At(1, 2, 0))
	requireT.Equal(7, d.Data[20])

	d.Fill(5)
	for _, v := range d.Data {
		requireT.Equal(5, v)
	}
}

func TestDenseRows(t *testing.T) {
	requireT := require.New(t)

	d := NewDense[int](Shape{2, 2})
	copy(d.Data, []int{1, 2, 3, 4})
	requireT.Equal([][]int{{1, 2}, {3, 4}}, d.Rows())

	shape := Shape{3}
	d = NewDense[int](shape)
	shape[0] = 5
	requireT.Equal(Shape{3}, d.Shape)
	requireT.Equal([][]int{{0}, {0}, {0}}, d.Rows())
}
