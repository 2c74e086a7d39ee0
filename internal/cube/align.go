package cube

import (
	"fmt"
)

// The aligner pairs the axes of two operands by name, decides the
// output axis order, and produces a pure Plan describing how each
// operand's tensor must be reshaped so a broadcast binary operation
// becomes valid. Planning is separated from execution: a Plan depends
// only on the two axis lists and is deterministic.

// GatherStep reorders one dimension of an operand tensor: take the
// given positions, in the given order, along Dim (counted on the
// operand's original dimensions).
type GatherStep struct {
	Dim     int
	Indices []int
}

// OperandPlan shapes one operand. Steps apply in order: gathers on the
// original dimensions, then the transpose, then unit-dimension inserts
// at the given output positions (ascending).
type OperandPlan struct {
	Gathers []GatherStep
	Order   []int
	Inserts []int
}

// identity reports whether the transpose permutation is a no-op.
func (p OperandPlan) identity() bool {
	for i, v := range p.Order {
		if i != v {
			return false
		}
	}
	return true
}

// Plan aligns two operands onto a common output axis list.
type Plan struct {
	Out   AxisList
	Left  OperandPlan
	Right OperandPlan
}

// Align computes the alignment plan for two axis lists. The plan
// depends only on its inputs and is identical across runs.
func Align(left, right AxisList) (Plan, error) {
	return plan(left, right)
}

// plan matches and aligns two axis lists.
//
// Output order: every left axis in left order (paired axes contribute
// their resolved version), followed by every axis unique to the right
// in right order.
func plan(left, right AxisList) (Plan, error) {
	outAxes := make([]*Axis, 0, left.Len()+right.Len())
	var lp, rp OperandPlan

	paired := make([]bool, right.Len())
	for i := 0; i < left.Len(); i++ {
		a := left.At(i)
		j := right.Find(a.Name())
		if j < 0 {
			outAxes = append(outAxes, a)
			continue
		}
		paired[j] = true

		resolved, leftGather, rightGather, err := resolvePair(a, right.At(j))
		if err != nil {
			return Plan{}, err
		}
		if leftGather != nil {
			lp.Gathers = append(lp.Gathers, GatherStep{Dim: i, Indices: leftGather})
		}
		if rightGather != nil {
			rp.Gathers = append(rp.Gathers, GatherStep{Dim: j, Indices: rightGather})
		}
		outAxes = append(outAxes, resolved)
	}
	for j := 0; j < right.Len(); j++ {
		if !paired[j] {
			outAxes = append(outAxes, right.At(j))
		}
	}

	// The left operand's axes already lead the output in their own
	// order; only the trailing unique-to-right positions are inserted.
	lp.Order = make([]int, left.Len())
	for i := range lp.Order {
		lp.Order[i] = i
	}
	for p := left.Len(); p < len(outAxes); p++ {
		lp.Inserts = append(lp.Inserts, p)
	}

	for p, ax := range outAxes {
		if j := right.Find(ax.Name()); j >= 0 {
			rp.Order = append(rp.Order, j)
		} else {
			rp.Inserts = append(rp.Inserts, p)
		}
	}

	out, err := NewAxisList(outAxes...)
	if err != nil {
		return Plan{}, err
	}
	return Plan{Out: out, Left: lp, Right: rp}, nil
}

// resolvePair reconciles two same-named axes. It returns the resolved
// output axis and, per side, the gather indices realigning that side's
// tensor (nil means identity).
//
//	Index / Index:   same label multiset; right permutes to left order.
//	Index / Series:  right's labels must be a subset; resolved axis is
//	                 the right one, and the LEFT side gathers.
//	Series / Index:  mirror of the above.
//	Series / Series: label sequences must be identical.
func resolvePair(a, b *Axis) (resolved *Axis, leftGather, rightGather []int, err error) {
	if a == b || a.Equal(b) {
		return a, nil, nil, nil
	}

	switch {
	case a.kind == KindIndex && b.kind == KindIndex:
		if a.Len() != b.Len() {
			return nil, nil, nil, fmt.Errorf("%w: index axes %q have different lengths %d and %d",
				ErrIncompatibleAxes, a.name, a.Len(), b.Len())
		}
		indices, lookupErr := b.positionsOf(a.labels)
		if lookupErr != nil {
			return nil, nil, nil, fmt.Errorf("%w: index axes %q have different labels", ErrIncompatibleAxes, a.name)
		}
		return a, nil, indices, nil

	case a.kind == KindIndex: // b is a Series
		indices, lookupErr := a.positionsOf(b.labels)
		if lookupErr != nil {
			return nil, nil, nil, fmt.Errorf("%w: series labels of %q are not a subset of the index", ErrIncompatibleAxes, a.name)
		}
		return b, indices, nil, nil

	case b.kind == KindIndex: // a is a Series
		indices, lookupErr := b.positionsOf(a.labels)
		if lookupErr != nil {
			return nil, nil, nil, fmt.Errorf("%w: series labels of %q are not a subset of the index", ErrIncompatibleAxes, a.name)
		}
		return a, nil, indices, nil

	default: // both Series
		if !a.labels.Equal(b.labels) {
			return nil, nil, nil, fmt.Errorf("%w: series axes %q have different labels", ErrIncompatibleAxes, a.name)
		}
		return a, nil, nil, nil
	}
}
