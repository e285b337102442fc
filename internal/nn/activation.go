package nn

import (
	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Tanh applies the hyperbolic tangent to every input.
//
// It has no parameters; use it between modules in a Sequential when a raw
// weighted sum needs squashing into (-1, 1).
type Tanh struct{}

// NewTanh creates a new Tanh activation module.
func NewTanh() *Tanh {
	return &Tanh{}
}

// Forward applies tanh element-wise.
func (t *Tanh) Forward(inputs []*autodiff.Value) []*autodiff.Value {
	outputs := make([]*autodiff.Value, len(inputs))
	for i, x := range inputs {
		outputs[i] = x.Tanh()
	}
	return outputs
}

// Parameters returns nil (Tanh has no trainable parameters).
func (t *Tanh) Parameters() []*autodiff.Value {
	return nil
}
