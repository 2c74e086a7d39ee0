package cube

import (
	"fmt"

	"github.com/cube-ml/cube/internal/tensor"
)

// Cube is a labeled n-dimensional dense array: a tensor paired with an
// axis list describing and annotating its dimensions.
//
// Cubes are immutable values. Every operation returns a new cube; the
// backing tensor buffer may be shared between cubes, but no operation
// ever exposes that sharing.
type Cube struct {
	axes    AxisList
	values  *tensor.RawTensor
	backend tensor.Backend
}

// New wraps a tensor and axes into a cube. The number of axes must
// equal the tensor's rank and each axis length must match the
// corresponding dimension.
func New(values *tensor.RawTensor, b tensor.Backend, axes ...*Axis) (*Cube, error) {
	list, err := NewAxisList(axes...)
	if err != nil {
		return nil, err
	}
	return newCube(values, b, list)
}

func newCube(values *tensor.RawTensor, b tensor.Backend, axes AxisList) (*Cube, error) {
	shape := values.Shape()
	if len(shape) != axes.Len() {
		return nil, fmt.Errorf("%w: tensor rank %d != axis count %d", ErrShapeMismatch, len(shape), axes.Len())
	}
	for i := 0; i < axes.Len(); i++ {
		if shape[i] != axes.At(i).Len() {
			return nil, fmt.Errorf("%w: axis %q has %d labels but dimension %d has length %d",
				ErrShapeMismatch, axes.At(i).Name(), axes.At(i).Len(), i, shape[i])
		}
	}
	return &Cube{axes: axes, values: values, backend: b}, nil
}

// FromSlice creates a cube from a flat value slice, a shape, and axes.
func FromSlice[T tensor.DType](values []T, shape tensor.Shape, b tensor.Backend, axes ...*Axis) (*Cube, error) {
	raw, err := tensor.FromSlice(values, shape)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}
	return New(raw, b, axes...)
}

// Scalar creates a rank-0 cube holding a single value.
func Scalar[T tensor.DType](value T, b tensor.Backend) *Cube {
	return &Cube{values: tensor.FromScalar(value), backend: b}
}

// Values returns a typed view of the cube's flat value data in
// row-major order (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the cube.
func Values[T tensor.DType](c *Cube) []T {
	return tensor.Data[T](c.values)
}

// Axes returns the cube's axis list.
func (c *Cube) Axes() AxisList {
	return c.axes
}

// Axis returns the axis with the given name.
func (c *Cube) Axis(name string) (*Axis, error) {
	return c.axes.ByName(name)
}

// Raw returns the underlying tensor.
func (c *Cube) Raw() *tensor.RawTensor {
	return c.values
}

// Backend returns the compute backend the cube operates on.
func (c *Cube) Backend() tensor.Backend {
	return c.backend
}

// Shape returns the tensor shape.
func (c *Cube) Shape() tensor.Shape {
	return c.values.Shape()
}

// Rank returns the number of axes.
func (c *Cube) Rank() int {
	return c.axes.Len()
}

// DType returns the element type of the cube's values.
func (c *Cube) DType() tensor.DataType {
	return c.values.DType()
}

// At returns the value at the given position along each axis.
func (c *Cube) At(indices ...int) (any, error) {
	shape := c.values.Shape()
	if len(indices) != len(shape) {
		return nil, fmt.Errorf("%w: got %d indices for rank %d", ErrShapeMismatch, len(indices), len(shape))
	}
	offset := 0
	strides := c.values.Strides()
	for i, idx := range indices {
		if idx < 0 || idx >= shape[i] {
			return nil, fmt.Errorf("%w: index %d for dimension %d of length %d", ErrIndexOutOfRange, idx, i, shape[i])
		}
		offset += idx * strides[i]
	}
	switch c.values.DType() {
	case tensor.Float32:
		return c.values.AsFloat32()[offset], nil
	case tensor.Float64:
		return c.values.AsFloat64()[offset], nil
	case tensor.Int32:
		return c.values.AsInt32()[offset], nil
	case tensor.Int64:
		return c.values.AsInt64()[offset], nil
	case tensor.Bool:
		return c.values.AsBool()[offset], nil
	default:
		panic(fmt.Sprintf("unsupported dtype %s", c.values.DType()))
	}
}

// Item returns the single value of a rank-0 cube.
func (c *Cube) Item() (any, error) {
	if c.Rank() != 0 {
		return nil, fmt.Errorf("%w: Item requires a rank-0 cube, got rank %d", ErrShapeMismatch, c.Rank())
	}
	return c.At()
}

// Equal reports whether two cubes have equal axes and equal values.
func (c *Cube) Equal(other *Cube) bool {
	return c.axes.Equal(other.axes) && c.values.Equal(other.values)
}

// String returns a human-readable representation of the cube.
func (c *Cube) String() string {
	return fmt.Sprintf("Cube(axes: %v, values: %s)", c.axes.Names(), c.values)
}

// derive wraps a result tensor with new axes, reusing the backend.
// Internal constructors guarantee shape agreement.
func (c *Cube) derive(values *tensor.RawTensor, axes AxisList) *Cube {
	return &Cube{axes: axes, values: values, backend: c.backend}
}
