package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromDense copies a gonum matrix into a new Matrix[float64].
// Views with a non-contiguous stride are handled element by element.
func FromDense(d mat.Matrix, act Activation[float64]) (*Matrix[float64], error) {
	if d == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := d.Dims()
	data := make([]float64, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			data = append(data, d.At(r, c))
		}
	}
	return New(data, rows, cols, act)
}

// ToDense converts m into a gonum *mat.Dense, widening elements to float64.
// gonum has no zero-sized dense matrices, so empty matrices are rejected.
func ToDense[T Real](m *Matrix[T]) (*mat.Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if m.rows == 0 || m.cols == 0 {
		return nil, fmt.Errorf("ToDense: %dx%d matrix: %w", m.rows, m.cols, ErrEmptyMatrix)
	}
	data := make([]float64, len(m.data))
	for i, v := range m.data {
		data[i] = float64(v)
	}
	return mat.NewDense(m.rows, m.cols, data), nil
}
