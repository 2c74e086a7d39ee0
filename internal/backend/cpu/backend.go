// Package cpu implements the pure-Go CPU backend for the tensor engine.
package cpu

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/cube-ml/cube/internal/tensor"
)

// CPUBackend implements tensor operations on the CPU.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Add performs element-wise addition with broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.arith("add", a, b,
		func(x, y float32) float32 { return x + y },
		func(x, y float64) float64 { return x + y },
		func(x, y int32) int32 { return x + y },
		func(x, y int64) int64 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.arith("sub", a, b,
		func(x, y float32) float32 { return x - y },
		func(x, y float64) float64 { return x - y },
		func(x, y int32) int32 { return x - y },
		func(x, y int64) int64 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.arith("mul", a, b,
		func(x, y float32) float32 { return x * y },
		func(x, y float64) float64 { return x * y },
		func(x, y int32) int32 { return x * y },
		func(x, y int64) int64 { return x * y })
}

// Div performs element-wise division with broadcasting.
// Integer operands use truncated division.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.arith("div", a, b,
		func(x, y float32) float32 { return x / y },
		func(x, y float64) float64 { return x / y },
		func(x, y int32) int32 { return x / y },
		func(x, y int64) int64 { return x / y })
}

// Mod performs element-wise remainder with broadcasting.
func (cpu *CPUBackend) Mod(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.arith("mod", a, b,
		math32.Mod,
		math.Mod,
		func(x, y int32) int32 { return x % y },
		func(x, y int64) int64 { return x % y })
}

// Pow raises a to the power b element-wise with broadcasting.
func (cpu *CPUBackend) Pow(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.arith("pow", a, b,
		math32.Pow,
		math.Pow,
		func(x, y int32) int32 { return int32(ipow(int64(x), int64(y))) },
		ipow)
}

// ipow computes integer exponentiation by squaring.
// Negative exponents yield 0 (truncated reciprocal), matching integer
// division semantics.
func ipow(base, exp int64) int64 {
	if exp < 0 {
		if base == 1 {
			return 1
		}
		if base == -1 {
			if exp%2 == 0 {
				return 1
			}
			return -1
		}
		return 0
	}
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}
