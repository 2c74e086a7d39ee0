// Copyright 2026 The Cube Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cube provides labeled n-dimensional arrays with automatic
// axis matching, alignment and broadcasting.
//
// # Overview
//
// A cube wraps a dense tensor with named, labeled axes. Element-wise
// operations between cubes pair axes by name, align the labels of
// paired axes, and broadcast over axes unique to either operand:
//
//	year, _ := cube.Index("year", []int{2014, 2015})
//	quarter, _ := cube.Index("quarter", []string{"Q1", "Q2", "Q3", "Q4"})
//
//	sales, _ := cube.New([]float64{14, 16, 13, 20, 15, 15, 10, 19},
//		tensor.Shape{2, 4}, year, quarter)
//	prices, _ := cube.New([]float64{1.50, 1.52, 1.53, 1.55},
//		tensor.Shape{4}, quarter)
//
//	revenue, _ := sales.Mul(prices) // axes [year, quarter]
//
// # Axis variants
//
// Index axes carry unique labels and align by label lookup; Series axes
// carry arbitrary labels and align only to identical sequences or to an
// Index that contains them. When labels cannot be reconciled the
// operation fails with ErrIncompatibleAxes; the library never restricts
// to a silent intersection. Use Filter to express a restriction.
//
// # Reductions, grouping and selection
//
// Sum, Mean, Min, Max, All and Any reduce along named axes, or
// everything down to a rank-0 cube. The *Keep variants name the axes to
// survive instead. Group partitions a Series axis by label equality.
// Filter, Take and Compress restrict an axis by labels, positions or a
// boolean mask.
//
// # Immutability
//
// Cubes, axes and label vectors never change after construction. Every
// operation returns a new cube; concurrent use from multiple goroutines
// is safe.
package cube
