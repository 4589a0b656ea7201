package types

// NewDense allocates dense array of the shape. Shape must be valid.
func NewDense[T any](shape Shape) Dense[T] {
	return Dense[T]{
		Shape: append(Shape{}, shape...),
		Data:  make([]T, shape.Size()),
	}
}

// Dense is the row-major N-dimensional array. The last axis varies fastest.
type Dense[T any] struct {
	Shape Shape
	Data  []T
}

// Offset returns the position of the cell in the flat data slice.
func (d Dense[T]) Offset(index ...int) int {
	var offset int
	for i, e := range d.Shape {
		offset = offset*e + index[i]
	}
	return offset
}

// At returns value stored in the cell.
func (d Dense[T]) At(index ...int) T {
	return d.Data[d.Offset(index...)]
}

// Set stores value in the cell.
func (d Dense[T]) Set(value T, index ...int) {
	d.Data[d.Offset(index...)] = value
}

// Fill sets all the cells to value.
func (d Dense[T]) Fill(value T) {
	for i := range d.Data {
		d.Data[i] = value
	}
}

// Rows returns data split into slices along the first axis.
func (d Dense[T]) Rows() [][]T {
	if len(d.Shape) == 0 || d.Shape[0] == 0 {
		return nil
	}
	stride := len(d.Data) / d.Shape[0]
	rows := make([][]T, 0, d.Shape[0])
	for i := range d.Shape[0] {
		rows = append(rows, d.Data[i*stride:(i+1)*stride])
	}
	return rows
}
