package matrix

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrOutOfRange     = errors.New("matrix: index out of range")
	ErrNilMatrix      = errors.New("matrix: nil matrix")
	ErrEmptyReduction = errors.New("matrix: empty reduction")
	ErrEmptyMatrix    = errors.New("matrix: empty matrix")
)

// ShapeError reports data whose length does not match rows*cols at construction.
type ShapeError struct {
	Len  int // Length of the supplied data
	Rows int // Requested row count
	Cols int // Requested column count
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.Rows < 0 || e.Cols < 0 {
		return fmt.Sprintf("Negative dimensions %d x %d", e.Rows, e.Cols)
	}
	return fmt.Sprintf("Incorrect data size %d != %d * %d", e.Len, e.Cols, e.Rows)
}

// DimensionError reports a pair of matrices that cannot be multiplied.
// Both shapes are stored as [cols, rows].
type DimensionError struct {
	First  [2]int
	Second [2]int
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("Matrix of %d x %d is incompatible with matrix of %d x %d.",
		e.First[0], e.First[1], e.Second[0], e.Second[1])
}

// EmptyReductionError reports a product with a zero-length row or column.
// Both shapes are stored as [cols, rows].
type EmptyReductionError struct {
	First  [2]int
	Second [2]int
}

// Error implements the error interface.
func (e *EmptyReductionError) Error() string {
	return fmt.Sprintf("Matrix of %d x %d cannot be multiplied with matrix of %d x %d: empty dimension.",
		e.First[0], e.First[1], e.Second[0], e.Second[1])
}

// Is reports whether target is ErrEmptyReduction.
func (e *EmptyReductionError) Is(target error) bool {
	return target == ErrEmptyReduction
}
