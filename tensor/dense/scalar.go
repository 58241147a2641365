package dense

import "github.com/cwbudde/algo-tensor/tensor/check"

// Scalarer is the zero-dimensional array protocol: Item extracts the single
// wrapped scalar, or fails when the value is not zero-dimensional.
type Scalarer interface {
	Item() (float64, error)
}

// AsScalar coerces v to a float64. Primitive numbers are returned directly
// without any protocol dispatch; everything else must implement Scalarer,
// whose failure is returned as-is. The primitive fast path is the common
// case in inner loops.
func AsScalar(v any) (float64, error) {
	if f, ok := asNumber(v); ok {
		return f, nil
	}
	if s, ok := v.(Scalarer); ok {
		return s.Item()
	}
	return 0, check.Invalid("value is neither a number nor a zero-dimensional array")
}

// asNumber converts any primitive numeric value to float64.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uintptr:
		return float64(n), true
	default:
		return 0, false
	}
}
