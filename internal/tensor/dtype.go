// Package tensor provides the dense tensor engine backing labeled cubes.
package tensor

// DType is a constraint for supported tensor element types.
// It uses Go generics to ensure compile-time type safety at the API boundary.
type DType interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~bool
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
	Bool
)

// Size returns the byte size of one element of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Bool:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// IsFloat reports whether dt is a floating-point type.
func (dt DataType) IsFloat() bool {
	return dt == Float32 || dt == Float64
}

// promotionRank orders data types for binary-operation promotion.
// Bool < Int32 < Int64 < Float32 < Float64.
func promotionRank(dt DataType) int {
	switch dt {
	case Bool:
		return 0
	case Int32:
		return 1
	case Int64:
		return 2
	case Float32:
		return 3
	case Float64:
		return 4
	default:
		panic("unknown data type")
	}
}

// Promote returns the common data type both operands of a binary
// element-wise operation are converted to before the operation runs.
func Promote(a, b DataType) DataType {
	if promotionRank(a) >= promotionRank(b) {
		return a
	}
	return b
}

// TypeOf returns the runtime DataType for element type T.
func TypeOf[T DType]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	case bool:
		return Bool
	default:
		panic("unsupported type")
	}
}
