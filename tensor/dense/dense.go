package dense

import (
	"errors"
	"fmt"
)

// Errors returned by the dense array types.
var (
	ErrShapeData  = errors.New("dense: data length does not match shape")
	ErrIndex      = errors.New("dense: index out of range")
	ErrNotZeroDim = errors.New("dense: not a zero-dimensional array")
	ErrNotNumeric = errors.New("dense: element is not numeric")
)

// array is the shared slice-backed storage of the three dense types.
type array[T any] struct {
	shape Shape
	data  []T
}

func newArray[T any](shape []int) (array[T], error) {
	s := Shape(shape).Clone()
	if err := s.validate(); err != nil {
		return array[T]{}, err
	}
	return array[T]{shape: s, data: make([]T, s.Elems())}, nil
}

func fromSlice[T any](data []T, shape []int) (array[T], error) {
	s := Shape(shape).Clone()
	if err := s.validate(); err != nil {
		return array[T]{}, err
	}
	if len(data) != s.Elems() {
		return array[T]{}, fmt.Errorf("%w: %d elements for shape %v", ErrShapeData, len(data), s)
	}
	return array[T]{shape: s, data: data}, nil
}

// Shape returns a copy of the array's shape.
func (a *array[T]) Shape() Shape { return a.shape.Clone() }

// Rank returns the number of axes.
func (a *array[T]) Rank() int { return a.shape.Rank() }

// Len returns the total element count.
func (a *array[T]) Len() int { return len(a.data) }

// Data returns the backing slice in row-major order. Mutations are visible
// to the array.
func (a *array[T]) Data() []T { return a.data }

// offset maps a multi-index to a flat row-major position.
func (a *array[T]) offset(ix []int) (int, error) {
	if len(ix) != a.shape.Rank() {
		return 0, fmt.Errorf("%w: got %d indices for rank %d", ErrIndex, len(ix), a.shape.Rank())
	}
	off := 0
	stride := 1
	for d := len(ix) - 1; d >= 0; d-- {
		if ix[d] < 0 || ix[d] >= a.shape[d] {
			return 0, fmt.Errorf("%w: index %d out of [0,%d) on axis %d", ErrIndex, ix[d], a.shape[d], d)
		}
		off += ix[d] * stride
		stride *= a.shape[d]
	}
	return off, nil
}

// At returns the element at the given multi-index. A rank-0 array takes no
// indices.
func (a *array[T]) At(ix ...int) (T, error) {
	var zero T
	off, err := a.offset(ix)
	if err != nil {
		return zero, err
	}
	return a.data[off], nil
}

// SetAt stores v at the given multi-index.
func (a *array[T]) SetAt(v T, ix ...int) error {
	off, err := a.offset(ix)
	if err != nil {
		return err
	}
	a.data[off] = v
	return nil
}

// Object is a dense array of arbitrary (any) elements.
type Object struct {
	array[any]
}

// Int64 is a dense array of 64-bit integers.
type Int64 struct {
	array[int64]
}

// Float64 is a dense array of 64-bit floats.
type Float64 struct {
	array[float64]
}

// NewObject returns a zero-dim Object for an empty shape, otherwise a
// nil-filled array of the given extents.
func NewObject(shape ...int) (*Object, error) {
	a, err := newArray[any](shape)
	if err != nil {
		return nil, err
	}
	return &Object{a}, nil
}

// NewInt64 returns a zero-filled Int64 array of the given extents.
func NewInt64(shape ...int) (*Int64, error) {
	a, err := newArray[int64](shape)
	if err != nil {
		return nil, err
	}
	return &Int64{a}, nil
}

// NewFloat64 returns a zero-filled Float64 array of the given extents.
func NewFloat64(shape ...int) (*Float64, error) {
	a, err := newArray[float64](shape)
	if err != nil {
		return nil, err
	}
	return &Float64{a}, nil
}

// FromObject wraps data, which must hold exactly the shape's element count,
// without copying.
func FromObject(data []any, shape ...int) (*Object, error) {
	a, err := fromSlice(data, shape)
	if err != nil {
		return nil, err
	}
	return &Object{a}, nil
}

// FromInt64 wraps data, which must hold exactly the shape's element count,
// without copying.
func FromInt64(data []int64, shape ...int) (*Int64, error) {
	a, err := fromSlice(data, shape)
	if err != nil {
		return nil, err
	}
	return &Int64{a}, nil
}

// FromFloat64 wraps data, which must hold exactly the shape's element count,
// without copying.
func FromFloat64(data []float64, shape ...int) (*Float64, error) {
	a, err := fromSlice(data, shape)
	if err != nil {
		return nil, err
	}
	return &Float64{a}, nil
}

// DType returns DTObject.
func (a *Object) DType() DType { return DTObject }

// DType returns DTInt64.
func (a *Int64) DType() DType { return DTInt64 }

// DType returns DTFloat64.
func (a *Float64) DType() DType { return DTFloat64 }

// Item extracts the scalar from a zero-dimensional array. The wrapped
// element must itself be a primitive number.
func (a *Object) Item() (float64, error) {
	if a.Rank() != 0 {
		return 0, fmt.Errorf("%w: rank %d", ErrNotZeroDim, a.Rank())
	}
	f, ok := asNumber(a.data[0])
	if !ok {
		return 0, fmt.Errorf("%w: %T", ErrNotNumeric, a.data[0])
	}
	return f, nil
}

// Item extracts the scalar from a zero-dimensional array.
func (a *Int64) Item() (float64, error) {
	if a.Rank() != 0 {
		return 0, fmt.Errorf("%w: rank %d", ErrNotZeroDim, a.Rank())
	}
	return float64(a.data[0]), nil
}

// Item extracts the scalar from a zero-dimensional array.
func (a *Float64) Item() (float64, error) {
	if a.Rank() != 0 {
		return 0, fmt.Errorf("%w: rank %d", ErrNotZeroDim, a.Rank())
	}
	return a.data[0], nil
}
