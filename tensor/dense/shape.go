package dense

import "github.com/cwbudde/algo-tensor/tensor/check"

// Shape is the per-axis extents of an array, e.g. Shape{2, 3, 4}. A nil or
// empty Shape is rank 0: a zero-dimensional array holding exactly one
// scalar.
type Shape []int

// Rank returns the number of axes.
func (s Shape) Rank() int { return len(s) }

// Elems returns the total element count, the product of the extents. A
// rank-0 shape has one element; any zero extent yields zero.
func (s Shape) Elems() int {
	n := 1
	for _, d := range s {
		if d <= 0 {
			return 0
		}
		n *= d
	}
	return n
}

// Strides returns the row-major element strides: the last axis has stride 1
// and strides[i] = strides[i+1] * s[i+1]. Rank 0 returns nil.
func (s Shape) Strides() []int {
	if len(s) == 0 {
		return nil
	}
	strides := make([]int, len(s))
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Equal reports whether s and o have the same rank and extents.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

func (s Shape) validate() error {
	for _, d := range s {
		if err := check.Require(d >= 0, "shape extents must be non-negative"); err != nil {
			return err
		}
	}
	return nil
}
