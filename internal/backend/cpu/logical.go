package cpu

import (
	"fmt"

	"github.com/cube-ml/cube/internal/tensor"
)

// Boolean operations on Bool tensors.

// And returns the element-wise logical AND of two Bool tensors.
func (cpu *CPUBackend) And(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.logical("and", a, b, func(x, y bool) bool { return x && y })
}

// Or returns the element-wise logical OR of two Bool tensors.
func (cpu *CPUBackend) Or(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.logical("or", a, b, func(x, y bool) bool { return x || y })
}

// Xor returns the element-wise logical XOR of two Bool tensors.
func (cpu *CPUBackend) Xor(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.logical("xor", a, b, func(x, y bool) bool { return x != y })
}

// Not returns the element-wise logical negation of a Bool tensor.
func (cpu *CPUBackend) Not(x *tensor.RawTensor) *tensor.RawTensor {
	if x.DType() != tensor.Bool {
		panic(fmt.Sprintf("not: dtype is %s, not bool", x.DType()))
	}
	result, err := tensor.NewRaw(x.Shape(), tensor.Bool)
	if err != nil {
		panic(fmt.Sprintf("not: %v", err))
	}
	src := x.AsBool()
	dst := result.AsBool()
	for i, v := range src {
		dst[i] = !v
	}
	return result
}

func (cpu *CPUBackend) logical(op string, a, b *tensor.RawTensor, f func(bool, bool) bool) *tensor.RawTensor {
	if a.DType() != tensor.Bool || b.DType() != tensor.Bool {
		panic(fmt.Sprintf("%s: requires bool tensors, got %s and %s", op, a.DType(), b.DType()))
	}

	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	result, err := tensor.NewRaw(outShape, tensor.Bool)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	binaryInto(result.AsBool(), a.AsBool(), b.AsBool(), a.Shape(), b.Shape(), outShape, f)
	return result
}
