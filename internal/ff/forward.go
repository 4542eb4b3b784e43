// Package ff implements feed-forward composition of weight matrices.
package ff

import (
	"github.com/born-ml/feedforward/internal/matrix"
	"github.com/born-ml/feedforward/internal/parallel"
)

// PipelineError reports the first failing step of a forward pass.
//
// Error returns the message of the underlying error unchanged; Unwrap exposes
// it so callers can still match *matrix.DimensionError or ErrEmptyReduction.
type PipelineError struct {
	Layer int   // Zero-based index of the weight matrix that failed
	Err   error // Underlying matrix error
}

// Error implements the error interface.
func (e *PipelineError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying matrix error.
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// LinForward folds weights over input: acc = Activate(Mult(acc, W)) for each W in order.
//
// The fold starts from a copy of input. It stops at the first failing
// multiplication and returns a *PipelineError; later weights are never touched.
// With no weights the copy of input is returned unchanged.
func LinForward[T matrix.Number](input *matrix.Matrix[T], weights []*matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	return LinForwardWith(input, weights, parallel.DefaultConfig())
}

// LinForwardWith is LinForward with an explicit parallel configuration for each multiplication.
func LinForwardWith[T matrix.Number](input *matrix.Matrix[T], weights []*matrix.Matrix[T], cfg parallel.Config) (*matrix.Matrix[T], error) {
	return fold(input, len(weights), func(i int) *matrix.Matrix[T] {
		return weights[i]
	}, cfg)
}

// fold runs the forward pass over n layers, fetching layer i only when step i runs.
func fold[T matrix.Number](input *matrix.Matrix[T], n int, layer func(i int) *matrix.Matrix[T], cfg parallel.Config) (*matrix.Matrix[T], error) {
	if input == nil {
		return nil, &PipelineError{Layer: -1, Err: matrix.ErrNilMatrix}
	}

	acc := input.Clone()
	for i := 0; i < n; i++ {
		product, err := acc.MultWith(layer(i), cfg)
		if err != nil {
			return nil, &PipelineError{Layer: i, Err: err}
		}
		acc = product.Activate()
	}

	return acc, nil
}
