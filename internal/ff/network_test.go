package ff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/feedforward/internal/matrix"
	"github.com/born-ml/feedforward/internal/parallel"
)

func TestNetwork(t *testing.T) {
	w1 := mustMatrix([]int{1, 2, 3, 4}, 2, 2, nil)
	w2 := mustMatrix([]int{1, 0, 0, 1}, 2, 2, nil)

	net := NewNetwork(w1)
	assert.Equal(t, 1, net.Len())

	net.Add(w2)
	assert.Equal(t, 2, net.Len())

	got, err := net.Layer(1)
	require.NoError(t, err)
	assert.Same(t, w2, got)

	_, err = net.Layer(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = net.Layer(-1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestNetwork_ForwardMatchesLinForward(t *testing.T) {
	input := mustMatrix([]int{1, -2, 3, -4}, 2, 2, matrix.ReLU[int])
	w1 := mustMatrix([]int{2, -1, 0, 3}, 2, 2, nil)
	w2 := mustMatrix([]int{1, 1, -1, 1, 0, 2}, 2, 3, nil)

	net := NewNetwork(w1, w2).WithConfig(parallel.Sequential())
	got, err := net.Forward(input)
	require.NoError(t, err)

	want, err := LinForward(input, []*matrix.Matrix[int]{w1, w2})
	require.NoError(t, err)

	assert.True(t, got.Equal(want), "got %v want %v", got, want)
}

func TestNetwork_Empty(t *testing.T) {
	input := mustMatrix([]int{5, 6}, 1, 2, nil)

	got, err := NewNetwork[int]().Forward(input)
	require.NoError(t, err)
	assert.True(t, got.Equal(input))
}

func TestNetwork_ForwardError(t *testing.T) {
	input := mustMatrix([]int{1, 2}, 1, 2, nil)
	net := NewNetwork(mustMatrix([]int{1, 2, 3}, 3, 1, nil))

	_, err := net.Forward(input)
	var pipeErr *PipelineError
	require.ErrorAs(t, err, &pipeErr)
	assert.Equal(t, 0, pipeErr.Layer)
}
