package cpu

import (
	"fmt"

	"github.com/cube-ml/cube/internal/tensor"
)

// SumDim sums tensor elements along the specified dimension.
//
// Negative dims index from the end. keepDim keeps the reduced dimension
// with size 1 instead of removing it.
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	switch x.DType() {
	case tensor.Float32:
		return foldDim("sumdim", x, dim, keepDim, func(acc, v float32) float32 { return acc + v })
	case tensor.Float64:
		return foldDim("sumdim", x, dim, keepDim, func(acc, v float64) float64 { return acc + v })
	case tensor.Int32:
		return foldDim("sumdim", x, dim, keepDim, func(acc, v int32) int32 { return acc + v })
	case tensor.Int64:
		return foldDim("sumdim", x, dim, keepDim, func(acc, v int64) int64 { return acc + v })
	default:
		panic(fmt.Sprintf("sumdim: unsupported dtype %s", x.DType()))
	}
}

// MeanDim computes the mean along the specified dimension.
// Integer input is cast to Float64 first.
func (cpu *CPUBackend) MeanDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	if !x.DType().IsFloat() {
		x = cpu.Cast(x, tensor.Float64)
	}

	n := x.Shape()[normalizeDim("meandim", dim, len(x.Shape()))]
	sum := cpu.SumDim(x, dim, keepDim)

	switch sum.DType() {
	case tensor.Float32:
		data := sum.AsFloat32()
		d := float32(n)
		for i := range data {
			data[i] /= d
		}
	case tensor.Float64:
		data := sum.AsFloat64()
		d := float64(n)
		for i := range data {
			data[i] /= d
		}
	}

	return sum
}

// MinDim computes the minimum along the specified dimension.
func (cpu *CPUBackend) MinDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	switch x.DType() {
	case tensor.Float32:
		return foldDim("mindim", x, dim, keepDim, minOf[float32])
	case tensor.Float64:
		return foldDim("mindim", x, dim, keepDim, minOf[float64])
	case tensor.Int32:
		return foldDim("mindim", x, dim, keepDim, minOf[int32])
	case tensor.Int64:
		return foldDim("mindim", x, dim, keepDim, minOf[int64])
	default:
		panic(fmt.Sprintf("mindim: unsupported dtype %s", x.DType()))
	}
}

// MaxDim computes the maximum along the specified dimension.
func (cpu *CPUBackend) MaxDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	switch x.DType() {
	case tensor.Float32:
		return foldDim("maxdim", x, dim, keepDim, maxOf[float32])
	case tensor.Float64:
		return foldDim("maxdim", x, dim, keepDim, maxOf[float64])
	case tensor.Int32:
		return foldDim("maxdim", x, dim, keepDim, maxOf[int32])
	case tensor.Int64:
		return foldDim("maxdim", x, dim, keepDim, maxOf[int64])
	default:
		panic(fmt.Sprintf("maxdim: unsupported dtype %s", x.DType()))
	}
}

// AllDim computes the logical conjunction along the specified dimension
// of a Bool tensor.
func (cpu *CPUBackend) AllDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	if x.DType() != tensor.Bool {
		panic(fmt.Sprintf("alldim: dtype is %s, not bool", x.DType()))
	}
	return foldDim("alldim", x, dim, keepDim, func(acc, v bool) bool { return acc && v })
}

// AnyDim computes the logical disjunction along the specified dimension
// of a Bool tensor.
func (cpu *CPUBackend) AnyDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	if x.DType() != tensor.Bool {
		panic(fmt.Sprintf("anydim: dtype is %s, not bool", x.DType()))
	}
	return foldDim("anydim", x, dim, keepDim, func(acc, v bool) bool { return acc || v })
}

// Sum computes the total sum of all elements (rank-0 result).
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(tensor.Shape{}, x.DType())
	if err != nil {
		panic(fmt.Sprintf("sum: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		result.AsFloat32()[0] = total(x.AsFloat32())
	case tensor.Float64:
		result.AsFloat64()[0] = total(x.AsFloat64())
	case tensor.Int32:
		result.AsInt32()[0] = total(x.AsInt32())
	case tensor.Int64:
		result.AsInt64()[0] = total(x.AsInt64())
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s", x.DType()))
	}

	return result
}

func total[T interface {
	~float32 | ~float64 | ~int32 | ~int64
}](src []T) T {
	var sum T
	for _, v := range src {
		sum += v
	}
	return sum
}

func minOf[T interface {
	~float32 | ~float64 | ~int32 | ~int64
}](a, b T) T {
	if b < a {
		return b
	}
	return a
}

func maxOf[T interface {
	~float32 | ~float64 | ~int32 | ~int64
}](a, b T) T {
	if b > a {
		return b
	}
	return a
}

func normalizeDim(op string, dim, ndim int) int {
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("%s: dimension %d out of range for %dD tensor", op, dim, ndim))
	}
	return dim
}

// foldDim reduces along dim with the given fold. Each output cell is
// seeded with its first element along dim, so the fold needs no neutral
// element.
func foldDim[T tensor.DType](op string, x *tensor.RawTensor, dim int, keepDim bool, fold func(T, T) T) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)
	dim = normalizeDim(op, dim, ndim)

	keepShape := shape.Clone()
	keepShape[dim] = 1

	result, err := tensor.NewRaw(keepShape, x.DType())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	src := tensor.Data[T](x)
	dst := tensor.Data[T](result)
	strides := shape.ComputeStrides()
	outStrides := keepShape.ComputeStrides()

	for i, v := range src {
		outIdx := 0
		dimCoord := 0
		rem := i
		for d := 0; d < ndim; d++ {
			coord := rem / strides[d]
			rem %= strides[d]
			if d == dim {
				dimCoord = coord
			} else {
				outIdx += coord * outStrides[d]
			}
		}
		if dimCoord == 0 {
			dst[outIdx] = v
		} else {
			dst[outIdx] = fold(dst[outIdx], v)
		}
	}

	if keepDim {
		return result
	}

	outShape := make(tensor.Shape, 0, ndim-1)
	for i := 0; i < ndim; i++ {
		if i != dim {
			outShape = append(outShape, shape[i])
		}
	}
	return result.Reshape(outShape)
}
