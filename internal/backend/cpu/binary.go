package cpu

import (
	"fmt"

	"github.com/cube-ml/cube/internal/tensor"
)

// arith dispatches an arithmetic binary operation over the numeric dtypes.
// Both operands must share a dtype; the cube kernel promotes beforehand.
func (cpu *CPUBackend) arith(op string, a, b *tensor.RawTensor,
	f32 func(float32, float32) float32,
	f64 func(float64, float64) float64,
	i32 func(int32, int32) int32,
	i64 func(int64, int64) int64,
) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", op, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	// In-place fast path: same shape and sole ownership of a's buffer.
	if !needsBroadcast && a.Shape().Equal(b.Shape()) && a.IsUnique() {
		switch a.DType() {
		case tensor.Float32:
			inplaceBinary(a.AsFloat32(), b.AsFloat32(), f32)
		case tensor.Float64:
			inplaceBinary(a.AsFloat64(), b.AsFloat64(), f64)
		case tensor.Int32:
			inplaceBinary(a.AsInt32(), b.AsInt32(), i32)
		case tensor.Int64:
			inplaceBinary(a.AsInt64(), b.AsInt64(), i64)
		default:
			panic(fmt.Sprintf("%s: unsupported dtype %s", op, a.DType()))
		}
		return a
	}

	result, err := tensor.NewRaw(outShape, a.DType())
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}

	switch a.DType() {
	case tensor.Float32:
		binaryInto(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, f32)
	case tensor.Float64:
		binaryInto(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, f64)
	case tensor.Int32:
		binaryInto(result.AsInt32(), a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape, i32)
	case tensor.Int64:
		binaryInto(result.AsInt64(), a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape, i64)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, a.DType()))
	}

	return result
}

// inplaceBinary applies f into a's own storage. Shapes must match exactly.
func inplaceBinary[T any](a, b []T, f func(T, T) T) {
	for i := range a {
		a[i] = f(a[i], b[i])
	}
}

// binaryInto applies f element-wise into dst, broadcasting a and b to
// outShape when required.
func binaryInto[T, R any](dst []R, a, b []T, aShape, bShape, outShape tensor.Shape, f func(T, T) R) {
	if aShape.Equal(bShape) && aShape.Equal(outShape) {
		for i := range dst {
			dst[i] = f(a[i], b[i])
		}
		return
	}

	pa := broadcastProjector(aShape, outShape)
	pb := broadcastProjector(bShape, outShape)
	for i := range dst {
		dst[i] = f(a[pa.index(i)], b[pb.index(i)])
	}
}
