// Copyright 2026 The Cube Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor exposes the dense tensor engine underlying cubes.
//
// The package defines the core engine types:
//   - RawTensor: dtype-tagged dense storage with shape and strides
//   - Backend: interface for compute implementations
//   - Shape, DataType: core type definitions
//
// Most callers construct cubes directly and never touch this package;
// it exists for supplying raw operands and for alternative backend
// implementations.
package tensor

import (
	"github.com/cube-ml/cube/internal/tensor"
)

// DType is a constraint for tensor element types.
// Supported types: float32, float64, int32, int64, bool.
type DType = tensor.DType

// DataType represents the runtime element type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Bool    DataType = tensor.Bool
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} is a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// RawTensor is the low-level dense tensor representation.
type RawTensor = tensor.RawTensor

// Backend is the interface compute backends implement.
type Backend = tensor.Backend

// NewRaw creates a zero-initialized tensor with the given shape and
// element type.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// FromSlice creates a tensor of the given shape from a flat Go slice.
func FromSlice[T DType](data []T, shape Shape) (*RawTensor, error) {
	return tensor.FromSlice(data, shape)
}

// FromScalar creates a rank-0 tensor holding a single value.
func FromScalar[T DType](value T) *RawTensor {
	return tensor.FromScalar(value)
}

// Data returns a typed slice view of a tensor's data (zero-copy).
func Data[T DType](r *RawTensor) []T {
	return tensor.Data[T](r)
}

// BroadcastShapes reconciles two shapes under right-aligned
// broadcasting rules.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}

// Promote returns the common data type binary operands convert to.
func Promote(a, b DataType) DataType {
	return tensor.Promote(a, b)
}
