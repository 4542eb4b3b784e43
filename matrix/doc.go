// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides a generic dense row-major matrix for feed-forward composition.
//
// # Overview
//
// A Matrix[T] holds rows*cols elements of any numeric type together with an
// element-wise Activation. It supports:
//   - Dimension-checked multiplication (Mult, MultWith)
//   - One-shot activation (Activate), which resets the activation to Identity
//   - Lazy row and column iteration (Row, Col)
//   - Conversion to and from gonum (ToDense, FromDense)
//
// # Basic Usage
//
//	a, err := matrix.New([]int{1, 2, 3, 4, 5, 6}, 2, 3, nil)
//	b, err := matrix.New([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, 3, 3, matrix.ReLU[int])
//
//	c, err := a.Mult(b) // 2x3, inherits a's activation
//	d := c.Activate()    // new matrix, Identity activation
//
// # Errors
//
// Construction with the wrong data length returns *ShapeError. Multiplying
// incompatible shapes returns *DimensionError, whose message reports both
// shapes cols first:
//
//	Matrix of 3 x 2 is incompatible with matrix of 2 x 4.
//
// Multiplying with a zero-sized operand returns *EmptyReductionError, which
// matches ErrEmptyReduction under errors.Is.
//
// # Equality
//
// Equal compares shape and elements only; the activation is not part of a
// matrix's identity.
package matrix
