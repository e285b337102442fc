package autodiff

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

// ErrGradientMismatch is returned when autodiff and finite differences disagree.
var ErrGradientMismatch = errors.New("gradient mismatch")

// GradientMismatchError describes the first input whose gradients disagree.
type GradientMismatchError struct {
	Index     int
	Autodiff  float64
	Numerical float64
}

// Error implements the error interface.
func (e *GradientMismatchError) Error() string {
	return fmt.Sprintf("%s: input %d: autodiff %g, numerical %g",
		ErrGradientMismatch, e.Index, e.Autodiff, e.Numerical)
}

// Unwrap allows errors.Is(err, ErrGradientMismatch).
func (e *GradientMismatchError) Unwrap() error {
	return ErrGradientMismatch
}

// GraphFunc builds a scalar expression from fresh input leaves.
type GraphFunc func(inputs []*Value) *Value

// Gradient evaluates f at x and returns the reverse-mode gradient with
// respect to each input.
func Gradient(f GraphFunc, x []float64) []float64 {
	inputs := Values(x...)
	f(inputs).Backward()

	grads := make([]float64, len(inputs))
	for i, in := range inputs {
		grads[i] = in.grad
	}
	return grads
}

// NumericalGradient approximates the gradient of f at x with central
// finite differences. Every evaluation builds a fresh graph.
func NumericalGradient(f GraphFunc, x []float64) []float64 {
	eval := func(p []float64) float64 {
		return f(Values(p...)).data
	}
	return fd.Gradient(nil, eval, x, &fd.Settings{Formula: fd.Central})
}

// CheckGradient compares Gradient and NumericalGradient at x.
//
// Two gradients agree when |a-n| <= tol*max(1, |a|, |n|).
func CheckGradient(f GraphFunc, x []float64, tol float64) error {
	analytic := Gradient(f, x)
	numeric := NumericalGradient(f, x)

	for i := range analytic {
		a, n := analytic[i], numeric[i]
		scale := math.Max(1, math.Max(math.Abs(a), math.Abs(n)))
		if math.IsNaN(a) || math.IsNaN(n) || math.Abs(a-n) > tol*scale {
			return &GradientMismatchError{Index: i, Autodiff: a, Numerical: n}
		}
	}
	return nil
}
