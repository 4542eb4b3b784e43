// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ff composes weight matrices into a feed-forward pass.
//
// # Overview
//
// LinForward folds an ordered list of weight matrices over an input:
//
//	acc := input
//	for _, w := range weights {
//	    acc = acc.Mult(w).Activate()
//	}
//
// Each product carries the activation of its left operand, and Activate
// resets it to Identity. In practice the input's activation is applied after
// the first product and Identity afterwards.
//
// # Errors
//
// The first incompatible multiplication stops the pass. The returned
// *PipelineError renders the underlying message unchanged and unwraps to the
// *matrix.DimensionError or *matrix.EmptyReductionError that caused it.
//
// # Network
//
// Network is a Sequential-style container over the same fold:
//
//	net := ff.NewNetwork(w1, w2)
//	net.Add(w3)
//	out, err := net.Forward(input)
package ff
