package cpu

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"

	"github.com/cube-ml/cube/internal/tensor"
)

// Neg returns the element-wise negation of a numeric tensor.
func (cpu *CPUBackend) Neg(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryNumeric("neg", x,
		func(v float32) float32 { return -v },
		func(v float64) float64 { return -v },
		func(v int32) int32 { return -v },
		func(v int64) int64 { return -v })
}

// Abs returns the element-wise absolute value of a numeric tensor.
func (cpu *CPUBackend) Abs(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryNumeric("abs", x,
		math32.Abs,
		math.Abs,
		func(v int32) int32 {
			if v < 0 {
				return -v
			}
			return v
		},
		func(v int64) int64 {
			if v < 0 {
				return -v
			}
			return v
		})
}

// Exp computes the element-wise exponential.
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryFloat("exp", x, math32.Exp, math.Exp)
}

// Log computes the element-wise natural logarithm.
func (cpu *CPUBackend) Log(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryFloat("log", x, math32.Log, math.Log)
}

// Sqrt computes the element-wise square root.
func (cpu *CPUBackend) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryFloat("sqrt", x, math32.Sqrt, math.Sqrt)
}

// Sin computes the element-wise sine.
func (cpu *CPUBackend) Sin(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryFloat("sin", x, math32.Sin, math.Sin)
}

// Cos computes the element-wise cosine.
func (cpu *CPUBackend) Cos(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryFloat("cos", x, math32.Cos, math.Cos)
}

// unaryFloat dispatches a float-only unary operation.
func (cpu *CPUBackend) unaryFloat(op string, x *tensor.RawTensor,
	f32 func(float32) float32,
	f64 func(float64) float64,
) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	switch x.DType() {
	case tensor.Float32:
		unaryInto(result.AsFloat32(), x.AsFloat32(), f32)
	case tensor.Float64:
		unaryInto(result.AsFloat64(), x.AsFloat64(), f64)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", op, x.DType()))
	}

	return result
}

// unaryNumeric dispatches a unary operation over all numeric dtypes.
func (cpu *CPUBackend) unaryNumeric(op string, x *tensor.RawTensor,
	f32 func(float32) float32,
	f64 func(float64) float64,
	i32 func(int32) int32,
	i64 func(int64) int64,
) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	switch x.DType() {
	case tensor.Float32:
		unaryInto(result.AsFloat32(), x.AsFloat32(), f32)
	case tensor.Float64:
		unaryInto(result.AsFloat64(), x.AsFloat64(), f64)
	case tensor.Int32:
		unaryInto(result.AsInt32(), x.AsInt32(), i32)
	case tensor.Int64:
		unaryInto(result.AsInt64(), x.AsInt64(), i64)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, x.DType()))
	}

	return result
}

func unaryInto[T any](dst, src []T, f func(T) T) {
	for i, v := range src {
		dst[i] = f(v)
	}
}
