package dense

// DType identifies the runtime element type of a dense array.
type DType int

// Supported element types.
const (
	DTObject DType = iota
	DTInt64
	DTFloat64
)

// Size returns the in-memory size of one element in bytes. Object elements
// are interface values, two words on 64-bit platforms.
func (dt DType) Size() int {
	switch dt {
	case DTInt64, DTFloat64:
		return 8
	case DTObject:
		return 16
	default:
		return 0
	}
}

// String returns a human-readable name for the element type.
func (dt DType) String() string {
	switch dt {
	case DTObject:
		return "object"
	case DTInt64:
		return "int64"
	case DTFloat64:
		return "float64"
	default:
		return "unknown"
	}
}
