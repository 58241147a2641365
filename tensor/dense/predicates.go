package dense

import "reflect"

// Type handles for the three dense array types, resolved once at package
// initialization and immutable afterwards. The predicates compare against
// these instead of re-deriving the types on every call.
var (
	objectArrayType  = reflect.TypeOf((*Object)(nil))
	int64ArrayType   = reflect.TypeOf((*Int64)(nil))
	float64ArrayType = reflect.TypeOf((*Float64)(nil))
)

// IsObjectArray reports whether v is exactly a *Object. The check is an
// exact runtime-type comparison: types that embed or wrap Object do not
// satisfy it.
func IsObjectArray(v any) bool {
	return v != nil && reflect.TypeOf(v) == objectArrayType
}

// IsInt64Array reports whether v is exactly a *Int64.
func IsInt64Array(v any) bool {
	return v != nil && reflect.TypeOf(v) == int64ArrayType
}

// IsFloat64Array reports whether v is exactly a *Float64.
func IsFloat64Array(v any) bool {
	return v != nil && reflect.TypeOf(v) == float64ArrayType
}
