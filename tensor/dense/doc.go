// Package dense provides the dense in-memory array types of the tensor
// library: Object (any elements), Int64 and Float64, all row-major and
// backed by flat Go slices.
//
// The three types carry distinct runtime identities. IsObjectArray,
// IsInt64Array and IsFloat64Array test those identities exactly, against
// type handles resolved once at package initialization. AsScalar coerces a
// primitive number or a zero-dimensional array to its scalar value.
package dense
