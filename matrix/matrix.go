// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/feedforward/internal/matrix"
	"github.com/born-ml/feedforward/internal/parallel"
)

// Type aliases for public API

// Number is a constraint for matrix element types.
type Number = matrix.Number

// Real is a constraint for ordered element types.
type Real = matrix.Real

// Float is a constraint for floating-point element types.
type Float = matrix.Float

// Matrix is a dense row-major matrix with an attached activation.
type Matrix[T Number] = matrix.Matrix[T]

// Activation is a pure element-wise function.
type Activation[T Number] = matrix.Activation[T]

// ParallelConfig controls how MultWith spreads output cells over goroutines.
type ParallelConfig = parallel.Config

// Error types.
type (
	ShapeError          = matrix.ShapeError
	DimensionError      = matrix.DimensionError
	EmptyReductionError = matrix.EmptyReductionError
)

// Common errors.
var (
	ErrOutOfRange     = matrix.ErrOutOfRange
	ErrNilMatrix      = matrix.ErrNilMatrix
	ErrEmptyReduction = matrix.ErrEmptyReduction
	ErrEmptyMatrix    = matrix.ErrEmptyMatrix
)

// New creates a rows×cols matrix over data. A nil act means Identity.
//
// Example:
//
//	m, err := matrix.New([]float64{1, -2, 3, -4}, 2, 2, matrix.ReLU[float64])
func New[T Number](data []T, rows, cols int, act Activation[T]) (*Matrix[T], error) {
	return matrix.New(data, rows, cols, act)
}

// Must panics if err is non-nil.
func Must[T Number](m *Matrix[T], err error) *Matrix[T] {
	return matrix.Must(m, err)
}

// DefaultParallelConfig returns the configuration used by Mult.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// SequentialConfig returns a configuration that never starts goroutines.
func SequentialConfig() ParallelConfig {
	return parallel.Sequential()
}

// Activations

// Identity returns x unchanged.
func Identity[T Number](x T) T { return matrix.Identity(x) }

// ReLU applies f(x) = max(0, x).
func ReLU[T Real](x T) T { return matrix.ReLU(x) }

// LeakyReLU returns f(x) = x for x > 0 and alpha*x otherwise.
func LeakyReLU[T Float](alpha T) Activation[T] { return matrix.LeakyReLU(alpha) }

// Sigmoid applies σ(x) = 1 / (1 + exp(-x)).
func Sigmoid[T Float](x T) T { return matrix.Sigmoid(x) }

// Tanh applies the hyperbolic tangent.
func Tanh[T Float](x T) T { return matrix.Tanh(x) }

// Sigmoid32 is Sigmoid computed natively in float32.
func Sigmoid32(x float32) float32 { return matrix.Sigmoid32(x) }

// Tanh32 is Tanh computed natively in float32.
func Tanh32(x float32) float32 { return matrix.Tanh32(x) }

// Compose returns x -> outer(inner(x)).
func Compose[T Number](outer, inner Activation[T]) Activation[T] {
	return matrix.Compose(outer, inner)
}

// gonum interop

// FromDense copies a gonum matrix into a new Matrix[float64].
func FromDense(d mat.Matrix, act Activation[float64]) (*Matrix[float64], error) {
	return matrix.FromDense(d, act)
}

// ToDense converts m into a gonum *mat.Dense.
func ToDense[T Real](m *Matrix[T]) (*mat.Dense, error) {
	return matrix.ToDense(m)
}
