// Package matrix provides the dense row-major Matrix type and its kernels.
package matrix

// Number is a constraint for matrix element types.
// Every member supports addition, multiplication, equality and %v formatting.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Real is a constraint for ordered element types (Number without complex).
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float is a constraint for floating-point element types.
type Float interface {
	~float32 | ~float64
}
