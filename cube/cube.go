// Copyright 2026 The Cube Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cube

import (
	"github.com/cube-ml/cube/backend/cpu"
	internalcube "github.com/cube-ml/cube/internal/cube"
	"github.com/cube-ml/cube/tensor"
)

// Cube is a labeled n-dimensional dense array.
type Cube = internalcube.Cube

// Axis is a named, labeled dimension of a cube.
type Axis = internalcube.Axis

// AxisList is an ordered collection of axes with unique names.
type AxisList = internalcube.AxisList

// Labels is an immutable vector of scalar label values.
type Labels = internalcube.Labels

// Label is a constraint for axis label element types.
type Label = internalcube.Label

// Kind discriminates the axis variants.
type Kind = internalcube.Kind

// Axis variants.
const (
	KindIndex  Kind = internalcube.KindIndex
	KindSeries Kind = internalcube.KindSeries
)

// Plan is the pure alignment descriptor produced for two axis lists.
type Plan = internalcube.Plan

// Typed failure modes. Match with errors.Is.
var (
	ErrDuplicateAxis       = internalcube.ErrDuplicateAxis
	ErrUniquenessViolation = internalcube.ErrUniquenessViolation
	ErrLabelNotFound       = internalcube.ErrLabelNotFound
	ErrAxisNotFound        = internalcube.ErrAxisNotFound
	ErrIncompatibleAxes    = internalcube.ErrIncompatibleAxes
	ErrShapeMismatch       = internalcube.ErrShapeMismatch
	ErrIndexOutOfRange     = internalcube.ErrIndexOutOfRange
	ErrInvalidPermutation  = internalcube.ErrInvalidPermutation
	ErrNonGroupableReducer = internalcube.ErrNonGroupableReducer
	ErrUnsupportedDType    = internalcube.ErrUnsupportedDType
)

// defaultBackend executes every operation on cubes built through this
// package's constructors.
var defaultBackend = cpu.New()

// Index creates an axis with pairwise-distinct labels and hash lookup.
func Index[L Label](name string, labels []L) (*Axis, error) {
	return internalcube.NewIndex(name, labels)
}

// Series creates an axis with arbitrary labels.
func Series[L Label](name string, labels []L) (*Axis, error) {
	return internalcube.NewSeries(name, labels)
}

// NewAxisList builds an axis list, rejecting duplicate names.
func NewAxisList(axes ...*Axis) (AxisList, error) {
	return internalcube.NewAxisList(axes...)
}

// New creates a cube from a flat value slice, a shape, and axes. The
// number of axes must equal the shape's rank and each axis length must
// match the corresponding dimension.
//
// Example:
//
//	year, _ := cube.Index("year", []int{2014, 2015})
//	quarter, _ := cube.Index("quarter", []string{"Q1", "Q2", "Q3", "Q4"})
//	sales, _ := cube.New([]float64{14, 16, 13, 20, 15, 15, 10, 19},
//		tensor.Shape{2, 4}, year, quarter)
func New[T tensor.DType](values []T, shape tensor.Shape, axes ...*Axis) (*Cube, error) {
	return internalcube.FromSlice(values, shape, defaultBackend, axes...)
}

// FromRaw wraps an existing tensor and axes into a cube.
func FromRaw(values *tensor.RawTensor, axes ...*Axis) (*Cube, error) {
	return internalcube.New(values, defaultBackend, axes...)
}

// FromRawOn wraps a tensor and axes into a cube operating on the given
// backend.
func FromRawOn(b tensor.Backend, values *tensor.RawTensor, axes ...*Axis) (*Cube, error) {
	return internalcube.New(values, b, axes...)
}

// Scalar creates a rank-0 cube holding a single value.
func Scalar[T tensor.DType](value T) *Cube {
	return internalcube.Scalar(value, defaultBackend)
}

// Values returns a typed view of a cube's flat value data in row-major
// order (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the cube.
func Values[T tensor.DType](c *Cube) []T {
	return internalcube.Values[T](c)
}

// Concatenate joins cubes along an axis every cube already carries; the
// remaining axes are matched and aligned across operands.
func Concatenate(cubes []*Cube, axisName string, asIndex bool) (*Cube, error) {
	return internalcube.Concatenate(cubes, axisName, asIndex)
}

// Join stacks cubes along a new axis no cube carries yet.
func Join(cubes []*Cube, ax *Axis) (*Cube, error) {
	return internalcube.Join(cubes, ax)
}

// Align computes the pure alignment plan for two axis lists without
// executing it.
func Align(left, right AxisList) (Plan, error) {
	return internalcube.Align(left, right)
}
