package matrix

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// Matrix is a dense row-major matrix with an attached element-wise activation.
//
// Element (r, c) lives at data[r*cols+c]. A Matrix is never modified after
// construction: Mult and Activate always return a new value.
type Matrix[T Number] struct {
	data       []T
	rows       int
	cols       int
	activation Activation[T]
}

// New creates a rows×cols matrix over data.
//
// The matrix takes ownership of data; the caller must not modify it afterwards.
// A nil activation means Identity. len(data) must equal rows*cols, otherwise a
// *ShapeError is returned, including when rows*cols overflows int.
// Zero rows or columns give a degenerate empty matrix.
func New[T Number](data []T, rows, cols int, act Activation[T]) (*Matrix[T], error) {
	if rows < 0 || cols < 0 || (cols != 0 && rows > math.MaxInt/cols) || len(data) != rows*cols {
		return nil, &ShapeError{Len: len(data), Rows: rows, Cols: cols}
	}
	if act == nil {
		act = Identity[T]
	}
	return &Matrix[T]{
		data:       data,
		rows:       rows,
		cols:       cols,
		activation: act,
	}, nil
}

// Must panics if err is non-nil. Intended for literals in tests and examples.
func Must[T Number](m *Matrix[T], err error) *Matrix[T] {
	if err != nil {
		panic(err)
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int {
	return m.cols
}

// Shape returns [rows, cols].
func (m *Matrix[T]) Shape() [2]int {
	return [2]int{m.rows, m.cols}
}

// Len returns the number of elements (rows*cols).
func (m *Matrix[T]) Len() int {
	return len(m.data)
}

// Data returns a copy of the row-major buffer.
func (m *Matrix[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)
	return out
}

// Activation returns the attached element-wise function.
func (m *Matrix[T]) Activation() Activation[T] {
	return m.activation
}

// At returns the element at row r, column c.
func (m *Matrix[T]) At(r, c int) (T, error) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		var zero T
		return zero, fmt.Errorf("At(%d,%d) on %dx%d: %w", r, c, m.rows, m.cols, ErrOutOfRange)
	}
	return m.data[r*m.cols+c], nil
}

// Row returns the elements of row i, left to right.
// The sequence reads the matrix lazily and may be iterated more than once.
func (m *Matrix[T]) Row(i int) (iter.Seq[T], error) {
	if i < 0 || i >= m.rows {
		return nil, fmt.Errorf("Row(%d) on %dx%d: %w", i, m.rows, m.cols, ErrOutOfRange)
	}
	return m.row(i), nil
}

// Col returns the elements of column j, top to bottom.
func (m *Matrix[T]) Col(j int) (iter.Seq[T], error) {
	if j < 0 || j >= m.cols {
		return nil, fmt.Errorf("Col(%d) on %dx%d: %w", j, m.rows, m.cols, ErrOutOfRange)
	}
	return m.col(j), nil
}

func (m *Matrix[T]) row(i int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range m.data[i*m.cols : (i+1)*m.cols] {
			if !yield(v) {
				return
			}
		}
	}
}

func (m *Matrix[T]) col(j int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := j; k < len(m.data); k += m.cols {
			if !yield(m.data[k]) {
				return
			}
		}
	}
}

// Equal reports whether m and other have the same shape and elements.
// The activation is not compared.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols || len(m.data) != len(other.data) {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of m with the same activation. A nil m gives nil.
func (m *Matrix[T]) Clone() *Matrix[T] {
	if m == nil {
		return nil
	}
	return &Matrix[T]{
		data:       m.Data(),
		rows:       m.rows,
		cols:       m.cols,
		activation: m.activation,
	}
}

// WithActivation returns a matrix sharing m's data with a different activation.
// A nil act means Identity. A nil m gives nil.
func (m *Matrix[T]) WithActivation(act Activation[T]) *Matrix[T] {
	if m == nil {
		return nil
	}
	if act == nil {
		act = Identity[T]
	}
	return &Matrix[T]{
		data:       m.data,
		rows:       m.rows,
		cols:       m.cols,
		activation: act,
	}
}

// String renders one bracketed row per line.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Matrix %dx%d\n", m.rows, m.cols)
	for r := 0; r < m.rows; r++ {
		sb.WriteString("[")
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", m.data[r*m.cols+c])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
