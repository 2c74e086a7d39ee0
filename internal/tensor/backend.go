package tensor

// Backend defines the interface a compute backend must implement to
// execute tensor operations for labeled cubes. Binary operations use
// NumPy-style right-aligned broadcasting: trailing dimensions align and
// length-1 dimensions stretch.
//
// Both operands of a binary operation must share a dtype; the caller is
// responsible for promotion via Cast. Backends panic on malformed input
// (shape or dtype violations); callers validate data-dependent conditions
// before descending to this layer.
type Backend interface {
	// Element-wise binary arithmetic
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor
	Mod(a, b *RawTensor) *RawTensor
	Pow(a, b *RawTensor) *RawTensor

	// Comparison operations (element-wise, return Bool tensor)
	Greater(a, b *RawTensor) *RawTensor
	GreaterEqual(a, b *RawTensor) *RawTensor
	Lower(a, b *RawTensor) *RawTensor
	LowerEqual(a, b *RawTensor) *RawTensor
	Equal(a, b *RawTensor) *RawTensor
	NotEqual(a, b *RawTensor) *RawTensor

	// Boolean operations (element-wise on Bool tensors)
	And(a, b *RawTensor) *RawTensor
	Or(a, b *RawTensor) *RawTensor
	Xor(a, b *RawTensor) *RawTensor
	Not(x *RawTensor) *RawTensor

	// Unary math (element-wise)
	Neg(x *RawTensor) *RawTensor
	Abs(x *RawTensor) *RawTensor
	Exp(x *RawTensor) *RawTensor
	Log(x *RawTensor) *RawTensor
	Sqrt(x *RawTensor) *RawTensor
	Sin(x *RawTensor) *RawTensor
	Cos(x *RawTensor) *RawTensor

	// Reduction operations along a dimension
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor
	MeanDim(x *RawTensor, dim int, keepDim bool) *RawTensor
	MinDim(x *RawTensor, dim int, keepDim bool) *RawTensor
	MaxDim(x *RawTensor, dim int, keepDim bool) *RawTensor
	AllDim(x *RawTensor, dim int, keepDim bool) *RawTensor
	AnyDim(x *RawTensor, dim int, keepDim bool) *RawTensor

	// Sum computes the total sum over all elements (rank-0 result).
	Sum(x *RawTensor) *RawTensor

	// Indexing and shape operations
	Take(x *RawTensor, dim int, indices []int) *RawTensor
	Transpose(x *RawTensor, axes ...int) *RawTensor
	Unsqueeze(x *RawTensor, dim int) *RawTensor
	Squeeze(x *RawTensor, dim int) *RawTensor
	Cat(tensors []*RawTensor, dim int) *RawTensor

	// Type conversion
	Cast(x *RawTensor, dtype DataType) *RawTensor

	// Metadata
	Name() string
}
