// Package nn builds feedforward networks out of autodiff scalar nodes.
//
// This package provides:
//   - Module interface: anything with Forward and Parameters
//   - Perceptron: tanh(bias + sum x_i*w_i)
//   - Layer: a row of perceptrons sharing the same inputs
//   - MLP: layers chained so each layer's outputs feed the next
//   - Sequential: generic container for chaining modules
//   - MSE loss and weight initializers
//
// Every Forward call builds a fresh graph from the persistent parameter
// leaves, so Backward on a loss computed from the outputs fills the
// parameters' gradients.
package nn

import (
	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Module is the base interface for all network components.
type Module interface {
	// Forward builds the graph for one sample and returns the output nodes.
	Forward(inputs []*autodiff.Value) []*autodiff.Value

	// Parameters returns every trainable leaf owned by the module, in a
	// stable order. Modules without parameters return nil.
	Parameters() []*autodiff.Value
}

// Inputs lifts a slice of literals into leaf nodes.
func Inputs[T autodiff.Number](xs []T) []*autodiff.Value {
	out := make([]*autodiff.Value, len(xs))
	for i, x := range xs {
		out[i] = autodiff.NewValue(float64(x))
	}
	return out
}

// Data returns the forward values of nodes.
func Data(nodes []*autodiff.Value) []float64 {
	out := make([]float64, len(nodes))
	for i, n := range nodes {
		out[i] = n.Data()
	}
	return out
}

// ZeroGrad resets the gradient of every parameter of m.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}
