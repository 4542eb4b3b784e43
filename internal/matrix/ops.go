package matrix

import (
	"github.com/born-ml/feedforward/internal/parallel"
)

// Mult returns the product m × other using the default parallel configuration.
func (m *Matrix[T]) Mult(other *Matrix[T]) (*Matrix[T], error) {
	return m.MultWith(other, parallel.DefaultConfig())
}

// MultWith returns the product m × other, computing output cells under cfg.
//
// m.Cols() must equal other.Rows(), otherwise a *DimensionError is returned.
// If either operand has a zero dimension the product would need an empty dot
// product, and an *EmptyReductionError is returned instead.
// The result is m.Rows()×other.Cols() and carries m's activation.
//
// Cells are independent, so the result does not depend on cfg, but the order
// in which cells are computed is unspecified unless cfg is
// parallel.Sequential(), which visits them row by row, left to right.
func (m *Matrix[T]) MultWith(other *Matrix[T], cfg parallel.Config) (*Matrix[T], error) {
	if m == nil || other == nil {
		return nil, ErrNilMatrix
	}
	if m.cols != other.rows {
		return nil, &DimensionError{
			First:  [2]int{m.cols, m.rows},
			Second: [2]int{other.cols, other.rows},
		}
	}
	if m.rows == 0 || m.cols == 0 || other.cols == 0 {
		return nil, &EmptyReductionError{
			First:  [2]int{m.cols, m.rows},
			Second: [2]int{other.cols, other.rows},
		}
	}

	n := other.cols
	out := make([]T, m.rows*n)
	parallel.ForGrid(m.rows, n, func(r, c int) {
		out[r*n+c] = m.dot(other, r, c)
	}, cfg)

	return New(out, m.rows, n, m.activation)
}

// dot folds row r of m against column c of other.
// The accumulator is seeded with the first product, not with zero.
func (m *Matrix[T]) dot(other *Matrix[T], r, c int) T {
	k := m.cols
	a := m.data[r*k : (r+1)*k]
	acc := a[0] * other.data[c]
	for i := 1; i < k; i++ {
		acc += a[i] * other.data[i*other.cols+c]
	}
	return acc
}

// Activate returns a matrix of the same shape with the activation applied to
// every element in row-major order. The result's activation is Identity, so
// activating it again leaves it unchanged. A nil m gives nil.
func (m *Matrix[T]) Activate() *Matrix[T] {
	if m == nil {
		return nil
	}
	out := make([]T, len(m.data))
	for i, v := range m.data {
		out[i] = m.activation(v)
	}
	return &Matrix[T]{
		data:       out,
		rows:       m.rows,
		cols:       m.cols,
		activation: Identity[T],
	}
}
