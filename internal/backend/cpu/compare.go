package cpu

import (
	"fmt"

	"github.com/cube-ml/cube/internal/tensor"
)

// Comparison operations return Bool tensors.

// Greater returns a > b element-wise.
func (cpu *CPUBackend) Greater(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("greater", a, b,
		func(x, y float32) bool { return x > y },
		func(x, y float64) bool { return x > y },
		func(x, y int32) bool { return x > y },
		func(x, y int64) bool { return x > y },
		nil)
}

// GreaterEqual returns a >= b element-wise.
func (cpu *CPUBackend) GreaterEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("greaterEqual", a, b,
		func(x, y float32) bool { return x >= y },
		func(x, y float64) bool { return x >= y },
		func(x, y int32) bool { return x >= y },
		func(x, y int64) bool { return x >= y },
		nil)
}

// Lower returns a < b element-wise.
func (cpu *CPUBackend) Lower(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("lower", a, b,
		func(x, y float32) bool { return x < y },
		func(x, y float64) bool { return x < y },
		func(x, y int32) bool { return x < y },
		func(x, y int64) bool { return x < y },
		nil)
}

// LowerEqual returns a <= b element-wise.
func (cpu *CPUBackend) LowerEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("lowerEqual", a, b,
		func(x, y float32) bool { return x <= y },
		func(x, y float64) bool { return x <= y },
		func(x, y int32) bool { return x <= y },
		func(x, y int64) bool { return x <= y },
		nil)
}

// Equal returns a == b element-wise.
func (cpu *CPUBackend) Equal(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("equal", a, b,
		func(x, y float32) bool { return x == y },
		func(x, y float64) bool { return x == y },
		func(x, y int32) bool { return x == y },
		func(x, y int64) bool { return x == y },
		func(x, y bool) bool { return x == y })
}

// NotEqual returns a != b element-wise.
func (cpu *CPUBackend) NotEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("notEqual", a, b,
		func(x, y float32) bool { return x != y },
		func(x, y float64) bool { return x != y },
		func(x, y int32) bool { return x != y },
		func(x, y int64) bool { return x != y },
		func(x, y bool) bool { return x != y })
}

func (cpu *CPUBackend) compare(op string, a, b *tensor.RawTensor,
	f32 func(float32, float32) bool,
	f64 func(float64, float64) bool,
	i32 func(int32, int32) bool,
	i64 func(int64, int64) bool,
	fb func(bool, bool) bool,
) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", op, a.DType(), b.DType()))
	}

	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	result, err := tensor.NewRaw(outShape, tensor.Bool)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	switch a.DType() {
	case tensor.Float32:
		binaryInto(result.AsBool(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, f32)
	case tensor.Float64:
		binaryInto(result.AsBool(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, f64)
	case tensor.Int32:
		binaryInto(result.AsBool(), a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape, i32)
	case tensor.Int64:
		binaryInto(result.AsBool(), a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape, i64)
	case tensor.Bool:
		if fb == nil {
			panic(fmt.Sprintf("%s: not defined for bool tensors", op))
		}
		binaryInto(result.AsBool(), a.AsBool(), b.AsBool(), a.Shape(), b.Shape(), outShape, fb)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, a.DType()))
	}

	return result
}
