package cpu

import (
	"fmt"

	"github.com/cube-ml/cube/internal/tensor"
)

// Transpose permutes the tensor's dimensions. With no axes the order of
// all dimensions is reversed. The copy is element-size agnostic: whole
// elements move as byte blocks.
func (cpu *CPUBackend) Transpose(x *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}

	if len(axes) != ndim {
		panic(fmt.Sprintf("transpose: axes length %d != ndim %d", len(axes), ndim))
	}
	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim {
			panic(fmt.Sprintf("transpose: invalid axis %d for %dD tensor", ax, ndim))
		}
		if seen[ax] {
			panic(fmt.Sprintf("transpose: duplicate axis %d", ax))
		}
		seen[ax] = true
	}

	newShape := make(tensor.Shape, ndim)
	for i, ax := range axes {
		newShape[i] = shape[ax]
	}

	result, err := tensor.NewRaw(newShape, x.DType())
	if err != nil {
		panic(fmt.Sprintf("transpose: %v", err))
	}

	origStrides := shape.ComputeStrides()
	p := projector{out: newShape.ComputeStrides(), src: make([]int, ndim)}
	for i, ax := range axes {
		p.src[i] = origStrides[ax]
	}

	es := x.DType().Size()
	src := x.Data()
	dst := result.Data()
	n := newShape.NumElements()
	for i := 0; i < n; i++ {
		srcIdx := p.index(i)
		copy(dst[i*es:(i+1)*es], src[srcIdx*es:srcIdx*es+es])
	}

	return result
}

// Take gathers slices along dim by an integer position vector: the
// output's dim has length len(indices), and output slice k is input
// slice indices[k]. Positions may repeat.
func (cpu *CPUBackend) Take(x *tensor.RawTensor, dim int, indices []int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)
	dim = normalizeDim("take", dim, ndim)

	if len(indices) == 0 {
		panic("take: at least one position required")
	}
	for _, idx := range indices {
		if idx < 0 || idx >= shape[dim] {
			panic(fmt.Sprintf("take: position %d out of bounds [0, %d)", idx, shape[dim]))
		}
	}

	outShape := shape.Clone()
	outShape[dim] = len(indices)

	result, err := tensor.NewRaw(outShape, x.DType())
	if err != nil {
		panic(fmt.Sprintf("take: %v", err))
	}

	outer := 1
	for _, d := range shape[:dim] {
		outer *= d
	}
	inner := x.DType().Size()
	for _, d := range shape[dim+1:] {
		inner *= d
	}

	src := x.Data()
	dst := result.Data()
	for o := 0; o < outer; o++ {
		srcBase := o * shape[dim] * inner
		dstBase := o * len(indices) * inner
		for k, idx := range indices {
			copy(dst[dstBase+k*inner:dstBase+(k+1)*inner], src[srcBase+idx*inner:srcBase+(idx+1)*inner])
		}
	}

	return result
}

// Unsqueeze inserts a dimension of size 1 at the specified position.
// This is a view operation.
func (cpu *CPUBackend) Unsqueeze(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	if dim < 0 {
		dim = ndim + 1 + dim
	}
	if dim < 0 || dim > ndim {
		panic(fmt.Sprintf("unsqueeze: dimension %d out of range for %dD tensor (valid: [0, %d])", dim, ndim, ndim))
	}

	newShape := make(tensor.Shape, 0, ndim+1)
	newShape = append(newShape, shape[:dim]...)
	newShape = append(newShape, 1)
	newShape = append(newShape, shape[dim:]...)

	return x.Reshape(newShape)
}

// Squeeze removes a dimension of size 1 at the specified position.
// This is a view operation; panics if the dimension size is not 1.
func (cpu *CPUBackend) Squeeze(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)
	dim = normalizeDim("squeeze", dim, ndim)

	if shape[dim] != 1 {
		panic(fmt.Sprintf("squeeze: dimension %d has size %d, must be 1", dim, shape[dim]))
	}

	newShape := make(tensor.Shape, 0, ndim-1)
	for i := 0; i < ndim; i++ {
		if i != dim {
			newShape = append(newShape, shape[i])
		}
	}

	return x.Reshape(newShape)
}

// Cat concatenates tensors along the specified dimension. All tensors
// must share dtype and shape except along the concatenation dimension.
func (cpu *CPUBackend) Cat(tensors []*tensor.RawTensor, dim int) *tensor.RawTensor {
	if len(tensors) == 0 {
		panic("cat: at least one tensor required")
	}

	shape := tensors[0].Shape()
	ndim := len(shape)
	dtype := tensors[0].DType()
	dim = normalizeDim("cat", dim, ndim)

	totalDim := 0
	for i, t := range tensors {
		tShape := t.Shape()
		if len(tShape) != ndim {
			panic(fmt.Sprintf("cat: tensor %d has %d dimensions, expected %d", i, len(tShape), ndim))
		}
		if t.DType() != dtype {
			panic(fmt.Sprintf("cat: tensor %d has dtype %s, expected %s", i, t.DType(), dtype))
		}
		for d := 0; d < ndim; d++ {
			if d == dim {
				totalDim += tShape[d]
			} else if tShape[d] != shape[d] {
				panic(fmt.Sprintf("cat: tensor %d dimension %d is %d, expected %d", i, d, tShape[d], shape[d]))
			}
		}
	}

	outShape := shape.Clone()
	outShape[dim] = totalDim

	result, err := tensor.NewRaw(outShape, dtype)
	if err != nil {
		panic(fmt.Sprintf("cat: %v", err))
	}

	outer := 1
	for _, d := range shape[:dim] {
		outer *= d
	}
	inner := dtype.Size()
	for _, d := range shape[dim+1:] {
		inner *= d
	}

	dst := result.Data()
	outBlock := totalDim * inner
	offset := 0
	for _, t := range tensors {
		src := t.Data()
		block := t.Shape()[dim] * inner
		for o := 0; o < outer; o++ {
			copy(dst[o*outBlock+offset:o*outBlock+offset+block], src[o*block:(o+1)*block])
		}
		offset += block
	}

	return result
}

// Cast converts the tensor to a different data type. Numeric casts
// truncate; bool converts to 0/1 and back via "non-zero is true".
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if x.DType() == dtype {
		return x.Clone()
	}

	result, err := tensor.NewRaw(x.Shape(), dtype)
	if err != nil {
		panic(fmt.Sprintf("cast: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		castFrom(result, x.AsFloat32())
	case tensor.Float64:
		castFrom(result, x.AsFloat64())
	case tensor.Int32:
		castFrom(result, x.AsInt32())
	case tensor.Int64:
		castFrom(result, x.AsInt64())
	case tensor.Bool:
		castFromBool(result, x.AsBool())
	default:
		panic(fmt.Sprintf("cast: unsupported dtype %s", x.DType()))
	}

	return result
}

func castFrom[S interface {
	~float32 | ~float64 | ~int32 | ~int64
}](dst *tensor.RawTensor, src []S) {
	switch dst.DType() {
	case tensor.Float32:
		numericCast(dst.AsFloat32(), src)
	case tensor.Float64:
		numericCast(dst.AsFloat64(), src)
	case tensor.Int32:
		numericCast(dst.AsInt32(), src)
	case tensor.Int64:
		numericCast(dst.AsInt64(), src)
	case tensor.Bool:
		out := dst.AsBool()
		for i, v := range src {
			out[i] = v != 0
		}
	default:
		panic(fmt.Sprintf("cast: unsupported dtype %s", dst.DType()))
	}
}

func castFromBool(dst *tensor.RawTensor, src []bool) {
	switch dst.DType() {
	case tensor.Float32:
		boolCast(dst.AsFloat32(), src)
	case tensor.Float64:
		boolCast(dst.AsFloat64(), src)
	case tensor.Int32:
		boolCast(dst.AsInt32(), src)
	case tensor.Int64:
		boolCast(dst.AsInt64(), src)
	default:
		panic(fmt.Sprintf("cast: unsupported dtype %s", dst.DType()))
	}
}

func numericCast[D, S interface {
	~float32 | ~float64 | ~int32 | ~int64
}](dst []D, src []S) {
	for i, v := range src {
		dst[i] = D(v)
	}
}

func boolCast[D interface {
	~float32 | ~float64 | ~int32 | ~int64
}](dst []D, src []bool) {
	for i, v := range src {
		if v {
			dst[i] = 1
		} else {
			dst[i] = 0
		}
	}
}
