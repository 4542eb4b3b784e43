package ff

import (
	"fmt"

	"github.com/born-ml/feedforward/internal/matrix"
	"github.com/born-ml/feedforward/internal/parallel"
)

// Network is an ordered list of weight matrices applied by LinForward.
//
// Example:
//
//	net := ff.NewNetwork(w1, w2)
//	net.Add(w3)
//	out, err := net.Forward(input)
//
// This is equivalent to:
//
//	out, err := ff.LinForward(input, []*matrix.Matrix[T]{w1, w2, w3})
type Network[T matrix.Number] struct {
	layers []*matrix.Matrix[T]
	cfg    parallel.Config
}

// NewNetwork creates a Network over the given weight matrices.
func NewNetwork[T matrix.Number](layers ...*matrix.Matrix[T]) *Network[T] {
	return &Network[T]{
		layers: layers,
		cfg:    parallel.DefaultConfig(),
	}
}

// WithConfig sets the parallel configuration used for multiplications and returns n.
func (n *Network[T]) WithConfig(cfg parallel.Config) *Network[T] {
	n.cfg = cfg
	return n
}

// Add appends a weight matrix.
func (n *Network[T]) Add(layer *matrix.Matrix[T]) {
	n.layers = append(n.layers, layer)
}

// Len returns the number of weight matrices.
func (n *Network[T]) Len() int {
	return len(n.layers)
}

// Layer returns the weight matrix at index.
func (n *Network[T]) Layer(index int) (*matrix.Matrix[T], error) {
	if index < 0 || index >= len(n.layers) {
		return nil, fmt.Errorf("Network.Layer(%d) with %d layers: %w", index, len(n.layers), matrix.ErrOutOfRange)
	}
	return n.layers[index], nil
}

// Forward runs LinForward over the network's layers.
func (n *Network[T]) Forward(input *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	return LinForwardWith(input, n.layers, n.cfg)
}
