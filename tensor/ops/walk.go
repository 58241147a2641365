package ops

import (
	"fmt"

	"github.com/cwbudde/algo-tensor/tensor/check"
	"github.com/cwbudde/algo-tensor/tensor/dense"
	"github.com/cwbudde/algo-tensor/tensor/iterate"
)

// SumObject accumulates every element of a after scalar coercion. Elements
// may be primitive numbers or zero-dimensional arrays; the first
// non-coercible element aborts the walk.
func SumObject(a *dense.Object) (float64, error) {
	if a == nil {
		return 0, ErrNilArray
	}
	var sum float64
	err := iterate.Indexed(a.Data(), func(i int, v any) error {
		f, err := dense.AsScalar(v)
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		sum += f
		return nil
	})
	if err != nil {
		return 0, err
	}
	return sum, nil
}

// FillInt64 sets every element of a to fn(ix), walking the index space in
// row-major order. The ix slice passed to fn is reused between calls.
func FillInt64(a *dense.Int64, fn func(ix []int) int64) error {
	if a == nil {
		return ErrNilArray
	}
	if err := check.Require(fn != nil, "fill function must not be nil"); err != nil {
		return err
	}
	data := a.Data()
	shape := a.Shape()
	strides := shape.Strides()
	iterate.ForShape(shape, func(ix []int) {
		off := 0
		for d, s := range strides {
			off += ix[d] * s
		}
		data[off] = fn(ix)
	})
	return nil
}
