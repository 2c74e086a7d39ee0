package cube

import (
	"fmt"

	"github.com/cube-ml/cube/internal/tensor"
)

// Binary element-wise operations. The other operand may be a *Cube
// (axes are matched and aligned first), a *tensor.RawTensor, or a Go
// scalar (alignment is bypassed and the cube's axes are kept).

// Add returns c + other element-wise.
func (c *Cube) Add(other any) (*Cube, error) { return c.binary(other, opAdd) }

// Sub returns c - other element-wise.
func (c *Cube) Sub(other any) (*Cube, error) { return c.binary(other, opSub) }

// Mul returns c * other element-wise.
func (c *Cube) Mul(other any) (*Cube, error) { return c.binary(other, opMul) }

// Div returns c / other element-wise. Integer operands promote to
// float64 (true division).
func (c *Cube) Div(other any) (*Cube, error) { return c.binary(other, opDiv) }

// Mod returns the element-wise remainder of c / other.
func (c *Cube) Mod(other any) (*Cube, error) { return c.binary(other, opMod) }

// Pow raises c to the power other element-wise.
func (c *Cube) Pow(other any) (*Cube, error) { return c.binary(other, opPow) }

// Comparison operations return bool cubes with the aligned axes.

// Gt returns c > other element-wise.
func (c *Cube) Gt(other any) (*Cube, error) { return c.binary(other, opGt) }

// Ge returns c >= other element-wise.
func (c *Cube) Ge(other any) (*Cube, error) { return c.binary(other, opGe) }

// Lt returns c < other element-wise.
func (c *Cube) Lt(other any) (*Cube, error) { return c.binary(other, opLt) }

// Le returns c <= other element-wise.
func (c *Cube) Le(other any) (*Cube, error) { return c.binary(other, opLe) }

// Eq returns c == other element-wise.
func (c *Cube) Eq(other any) (*Cube, error) { return c.binary(other, opEq) }

// Ne returns c != other element-wise.
func (c *Cube) Ne(other any) (*Cube, error) { return c.binary(other, opNe) }

// Logical operations require bool cubes.

// And returns the element-wise conjunction of two bool cubes.
func (c *Cube) And(other any) (*Cube, error) { return c.binary(other, opAnd) }

// Or returns the element-wise disjunction of two bool cubes.
func (c *Cube) Or(other any) (*Cube, error) { return c.binary(other, opOr) }

// Xor returns the element-wise exclusive disjunction of two bool cubes.
func (c *Cube) Xor(other any) (*Cube, error) { return c.binary(other, opXor) }

// Not returns the element-wise negation of a bool cube.
func (c *Cube) Not() (*Cube, error) {
	if c.DType() != tensor.Bool {
		return nil, fmt.Errorf("%w: not requires a bool cube, got %s", ErrUnsupportedDType, c.DType())
	}
	return c.derive(c.backend.Not(c.values), c.axes), nil
}

// Unary numerical functions apply pointwise and preserve the axis list.

// Neg returns the element-wise negation.
func (c *Cube) Neg() (*Cube, error) {
	return c.unaryNumeric("neg", c.backend.Neg)
}

// Abs returns the element-wise absolute value.
func (c *Cube) Abs() (*Cube, error) {
	return c.unaryNumeric("abs", c.backend.Abs)
}

// Exp returns the element-wise exponential. Integer cubes promote to
// float64.
func (c *Cube) Exp() (*Cube, error) {
	return c.unaryFloat("exp", c.backend.Exp)
}

// Log returns the element-wise natural logarithm. Integer cubes promote
// to float64.
func (c *Cube) Log() (*Cube, error) {
	return c.unaryFloat("log", c.backend.Log)
}

// Sqrt returns the element-wise square root. Integer cubes promote to
// float64.
func (c *Cube) Sqrt() (*Cube, error) {
	return c.unaryFloat("sqrt", c.backend.Sqrt)
}

// Sin returns the element-wise sine. Integer cubes promote to float64.
func (c *Cube) Sin() (*Cube, error) {
	return c.unaryFloat("sin", c.backend.Sin)
}

// Cos returns the element-wise cosine. Integer cubes promote to float64.
func (c *Cube) Cos() (*Cube, error) {
	return c.unaryFloat("cos", c.backend.Cos)
}

// Apply maps a user function over the cube's values as float64 and
// returns a float64 cube with the same axes.
func (c *Cube) Apply(fn func(float64) float64) (*Cube, error) {
	if c.DType() == tensor.Bool {
		return nil, fmt.Errorf("%w: apply requires a numeric cube", ErrUnsupportedDType)
	}
	src := c.values
	if src.DType() != tensor.Float64 {
		src = c.backend.Cast(src, tensor.Float64)
	}
	out, err := tensor.NewRaw(src.Shape(), tensor.Float64)
	if err != nil {
		return nil, err
	}
	dst := out.AsFloat64()
	for i, v := range src.AsFloat64() {
		dst[i] = fn(v)
	}
	return c.derive(out, c.axes), nil
}

func (c *Cube) unaryNumeric(op string, fn func(*tensor.RawTensor) *tensor.RawTensor) (*Cube, error) {
	if c.DType() == tensor.Bool {
		return nil, fmt.Errorf("%w: %s requires a numeric cube", ErrUnsupportedDType, op)
	}
	return c.derive(fn(c.values), c.axes), nil
}

func (c *Cube) unaryFloat(op string, fn func(*tensor.RawTensor) *tensor.RawTensor) (*Cube, error) {
	if c.DType() == tensor.Bool {
		return nil, fmt.Errorf("%w: %s requires a numeric cube", ErrUnsupportedDType, op)
	}
	values := c.values
	if !values.DType().IsFloat() {
		values = c.backend.Cast(values, tensor.Float64)
	}
	return c.derive(fn(values), c.axes), nil
}
