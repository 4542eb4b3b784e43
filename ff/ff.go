// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ff

import (
	"github.com/born-ml/feedforward/internal/ff"
	"github.com/born-ml/feedforward/matrix"
)

// PipelineError reports the first failing step of a forward pass.
type PipelineError = ff.PipelineError

// Network is an ordered list of weight matrices applied by LinForward.
type Network[T matrix.Number] = ff.Network[T]

// NewNetwork creates a Network over the given weight matrices.
func NewNetwork[T matrix.Number](layers ...*matrix.Matrix[T]) *Network[T] {
	return ff.NewNetwork(layers...)
}

// LinForward folds weights over input, multiplying then activating at each step.
//
// Example:
//
//	out, err := ff.LinForward(input, []*matrix.Matrix[float64]{w1, w2})
func LinForward[T matrix.Number](input *matrix.Matrix[T], weights []*matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	return ff.LinForward(input, weights)
}

// LinForwardWith is LinForward with an explicit parallel configuration.
func LinForwardWith[T matrix.Number](input *matrix.Matrix[T], weights []*matrix.Matrix[T], cfg matrix.ParallelConfig) (*matrix.Matrix[T], error) {
	return ff.LinForwardWith(input, weights, cfg)
}
