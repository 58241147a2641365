package ops

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-tensor/tensor/core"
	"github.com/cwbudde/algo-tensor/tensor/dense"
)

// Errors returned by ops functions.
var (
	ErrNilArray      = errors.New("ops: nil array")
	ErrShapeMismatch = errors.New("ops: shape mismatch")
	ErrNot1D         = errors.New("ops: array must be one-dimensional")
	ErrEmpty         = errors.New("ops: empty array")
)

// sameShape checks that all arrays are non-nil and share one shape.
func sameShape(arrays ...*dense.Float64) error {
	for _, a := range arrays {
		if a == nil {
			return ErrNilArray
		}
	}
	first := arrays[0].Shape()
	for _, a := range arrays[1:] {
		if !first.Equal(a.Shape()) {
			return ErrShapeMismatch
		}
	}
	return nil
}

// Mul computes the element-wise product dst = a * b. All three arrays must
// share one shape; dst may alias a or b.
//
// The kernel uses SIMD-optimized implementations when available (AVX2,
// SSE2, NEON).
func Mul(dst, a, b *dense.Float64) error {
	if err := sameShape(dst, a, b); err != nil {
		return err
	}
	vecmath.MulBlock(dst.Data(), a.Data(), b.Data())
	return nil
}

// MulInPlace computes a *= b element-wise.
func MulInPlace(a, b *dense.Float64) error {
	if err := sameShape(a, b); err != nil {
		return err
	}
	vecmath.MulBlockInPlace(a.Data(), b.Data())
	return nil
}

// Magnitude computes dst[i] = sqrt(re[i]^2 + im[i]^2) for split complex
// input.
func Magnitude(dst, re, im *dense.Float64) error {
	if err := sameShape(dst, re, im); err != nil {
		return err
	}
	vecmath.Magnitude(dst.Data(), re.Data(), im.Data())
	return nil
}

// Power computes dst[i] = re[i]^2 + im[i]^2 for split complex input.
func Power(dst, re, im *dense.Float64) error {
	if err := sameShape(dst, re, im); err != nil {
		return err
	}
	vecmath.Power(dst.Data(), re.Data(), im.Data())
	return nil
}

// Clip limits every element of a to the inclusive range [lo, hi], in place.
func Clip(a *dense.Float64, lo, hi float64) error {
	if a == nil {
		return ErrNilArray
	}
	data := a.Data()
	for i, v := range data {
		data[i] = core.Clamp(v, lo, hi)
	}
	return nil
}

// AllClose reports whether a and b match element-wise within eps. A shape
// mismatch is an error, not a false result.
func AllClose(a, b *dense.Float64, eps float64) (bool, error) {
	if err := sameShape(a, b); err != nil {
		return false, err
	}
	ad, bd := a.Data(), b.Data()
	for i := range ad {
		if !core.NearlyEqual(ad[i], bd[i], eps) {
			return false, nil
		}
	}
	return true, nil
}
