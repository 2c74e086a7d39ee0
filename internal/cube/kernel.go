package cube

import (
	"fmt"

	"github.com/cube-ml/cube/internal/tensor"
)

// binOp enumerates the binary element-wise operations the kernel can
// execute through the tensor engine.
type binOp int

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
	opMod
	opPow
	opGt
	opGe
	opLt
	opLe
	opEq
	opNe
	opAnd
	opOr
	opXor
)

func (op binOp) String() string {
	switch op {
	case opAdd:
		return "add"
	case opSub:
		return "sub"
	case opMul:
		return "mul"
	case opDiv:
		return "div"
	case opMod:
		return "mod"
	case opPow:
		return "pow"
	case opGt:
		return "gt"
	case opGe:
		return "ge"
	case opLt:
		return "lt"
	case opLe:
		return "le"
	case opEq:
		return "eq"
	case opNe:
		return "ne"
	case opAnd:
		return "and"
	case opOr:
		return "or"
	case opXor:
		return "xor"
	default:
		return "unknown"
	}
}

func (op binOp) isComparison() bool {
	return op >= opGt && op <= opNe
}

func (op binOp) isLogical() bool {
	return op >= opAnd
}

// binary is the single entry point for all binary operations. The right
// operand may be a cube, a raw tensor, or a Go scalar.
func (c *Cube) binary(other any, op binOp) (*Cube, error) {
	switch o := other.(type) {
	case *Cube:
		return applyAligned(c, o, op)
	case *tensor.RawTensor:
		return applyRaw(c, o, op)
	default:
		raw, err := scalarTensor(o)
		if err != nil {
			return nil, err
		}
		return applyRaw(c, raw, op)
	}
}

// applyAligned matches and aligns the axes of both cubes, shapes both
// tensors per the plan, and invokes the engine operation.
func applyAligned(a, b *Cube, op binOp) (*Cube, error) {
	dtype, err := operandDType(op, a.DType(), b.DType())
	if err != nil {
		return nil, err
	}

	p, err := plan(a.axes, b.axes)
	if err != nil {
		return nil, err
	}

	left := executeOperandPlan(a.backend, prepare(a.backend, a.values, dtype), p.Left)
	right := executeOperandPlan(a.backend, prepare(a.backend, b.values, dtype), p.Right)

	defer left.ForceNonUnique()()
	defer right.ForceNonUnique()()

	return a.derive(invoke(a.backend, op, left, right), p.Out), nil
}

// applyRaw handles a bare tensor or scalar right operand: alignment is
// bypassed, the engine's own broadcast rules decide compatibility, and
// the cube's axis list is kept. The operand must broadcast onto the
// cube's shape without enlarging it.
func applyRaw(c *Cube, r *tensor.RawTensor, op binOp) (*Cube, error) {
	dtype, err := operandDType(op, c.DType(), r.DType())
	if err != nil {
		return nil, err
	}

	outShape, _, err := tensor.BroadcastShapes(c.values.Shape(), r.Shape())
	if err != nil || !outShape.Equal(c.values.Shape()) {
		return nil, fmt.Errorf("%w: operand shape %v does not broadcast onto cube shape %v",
			ErrShapeMismatch, r.Shape(), c.values.Shape())
	}

	left := prepare(c.backend, c.values, dtype)
	right := prepare(c.backend, r, dtype)

	defer left.ForceNonUnique()()
	defer right.ForceNonUnique()()

	return c.derive(invoke(c.backend, op, left, right), c.axes), nil
}

// executeOperandPlan shapes one operand tensor: gathers, transpose,
// then unit-dimension inserts.
func executeOperandPlan(b tensor.Backend, raw *tensor.RawTensor, p OperandPlan) *tensor.RawTensor {
	out := raw
	for _, g := range p.Gathers {
		out = b.Take(out, g.Dim, g.Indices)
	}
	if !p.identity() {
		out = b.Transpose(out, p.Order...)
	}
	for _, pos := range p.Inserts {
		out = b.Unsqueeze(out, pos)
	}
	return out
}

// prepare casts an operand to the operation's common dtype.
func prepare(b tensor.Backend, raw *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if raw.DType() == dtype {
		return raw
	}
	return b.Cast(raw, dtype)
}

// operandDType decides the dtype both operands are promoted to before
// the engine call, and rejects operations undefined for the operand
// types.
func operandDType(op binOp, a, b tensor.DataType) (tensor.DataType, error) {
	switch {
	case op.isLogical():
		if a != tensor.Bool || b != tensor.Bool {
			return 0, fmt.Errorf("%w: %s requires bool operands, got %s and %s", ErrUnsupportedDType, op, a, b)
		}
		return tensor.Bool, nil

	case op.isComparison():
		dtype := tensor.Promote(a, b)
		if dtype == tensor.Bool && op != opEq && op != opNe {
			return 0, fmt.Errorf("%w: %s is not defined for bool operands", ErrUnsupportedDType, op)
		}
		return dtype, nil

	case op == opDiv:
		if a == tensor.Bool || b == tensor.Bool {
			return 0, fmt.Errorf("%w: %s is not defined for bool operands", ErrUnsupportedDType, op)
		}
		// True division: integer operands promote to float.
		dtype := tensor.Promote(a, b)
		if !dtype.IsFloat() {
			dtype = tensor.Float64
		}
		return dtype, nil

	default:
		if a == tensor.Bool || b == tensor.Bool {
			return 0, fmt.Errorf("%w: %s is not defined for bool operands", ErrUnsupportedDType, op)
		}
		return tensor.Promote(a, b), nil
	}
}

// invoke maps a binOp onto the engine call.
func invoke(b tensor.Backend, op binOp, l, r *tensor.RawTensor) *tensor.RawTensor {
	switch op {
	case opAdd:
		return b.Add(l, r)
	case opSub:
		return b.Sub(l, r)
	case opMul:
		return b.Mul(l, r)
	case opDiv:
		return b.Div(l, r)
	case opMod:
		return b.Mod(l, r)
	case opPow:
		return b.Pow(l, r)
	case opGt:
		return b.Greater(l, r)
	case opGe:
		return b.GreaterEqual(l, r)
	case opLt:
		return b.Lower(l, r)
	case opLe:
		return b.LowerEqual(l, r)
	case opEq:
		return b.Equal(l, r)
	case opNe:
		return b.NotEqual(l, r)
	case opAnd:
		return b.And(l, r)
	case opOr:
		return b.Or(l, r)
	case opXor:
		return b.Xor(l, r)
	default:
		panic(fmt.Sprintf("unknown binary operation %d", op))
	}
}

// scalarTensor wraps a Go scalar as a rank-0 tensor.
func scalarTensor(v any) (*tensor.RawTensor, error) {
	switch x := v.(type) {
	case float32:
		return tensor.FromScalar(x), nil
	case float64:
		return tensor.FromScalar(x), nil
	case int:
		return tensor.FromScalar(int64(x)), nil
	case int32:
		return tensor.FromScalar(x), nil
	case int64:
		return tensor.FromScalar(x), nil
	case bool:
		return tensor.FromScalar(x), nil
	default:
		return nil, fmt.Errorf("%w: operand type %T", ErrUnsupportedDType, v)
	}
}
