package matrix

import (
	"math"

	"github.com/chewxy/math32"
)

// Activation is a pure element-wise function.
type Activation[T Number] func(T) T

// Identity returns x unchanged.
func Identity[T Number](x T) T {
	return x
}

// ReLU applies f(x) = max(0, x).
func ReLU[T Real](x T) T {
	return max(x, 0)
}

// LeakyReLU returns f(x) = x for x > 0 and alpha*x otherwise.
func LeakyReLU[T Float](alpha T) Activation[T] {
	return func(x T) T {
		if x > 0 {
			return x
		}
		return alpha * x
	}
}

// Sigmoid applies σ(x) = 1 / (1 + exp(-x)) in float64 precision.
func Sigmoid[T Float](x T) T {
	return T(1 / (1 + math.Exp(-float64(x))))
}

// Tanh applies the hyperbolic tangent in float64 precision.
func Tanh[T Float](x T) T {
	return T(math.Tanh(float64(x)))
}

// Sigmoid32 is Sigmoid computed natively in float32.
func Sigmoid32(x float32) float32 {
	return 1 / (1 + math32.Exp(-x))
}

// Tanh32 is Tanh computed natively in float32.
func Tanh32(x float32) float32 {
	return math32.Tanh(x)
}

// Compose returns x -> outer(inner(x)). Nil arguments act as Identity.
func Compose[T Number](outer, inner Activation[T]) Activation[T] {
	if outer == nil {
		outer = Identity[T]
	}
	if inner == nil {
		inner = Identity[T]
	}
	return func(x T) T {
		return outer(inner(x))
	}
}
