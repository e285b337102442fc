package nn

import (
	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Sequential is a container module that chains multiple modules together.
//
// Each module's outputs become the next module's inputs.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLayer(3, 4),
//	    nn.NewLayer(4, 1),
//	)
//
//	outputs := model.Forward(nn.Inputs([]float64{1, 2, 3}))
type Sequential struct {
	modules []Module
}

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{
		modules: modules,
	}
}

// Forward applies all modules in sequence.
func (s *Sequential) Forward(inputs []*autodiff.Value) []*autodiff.Value {
	outputs := inputs
	for _, module := range s.modules {
		outputs = module.Forward(outputs)
	}
	return outputs
}

// Parameters returns all trainable parameters from all modules, in module order.
func (s *Sequential) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}

// Add appends a module to the sequence.
func (s *Sequential) Add(module Module) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules in the sequence.
func (s *Sequential) Len() int {
	return len(s.modules)
}

// Module returns the module at the given index.
//
// Panics if index is out of bounds.
func (s *Sequential) Module(index int) Module {
	if index < 0 || index >= len(s.modules) {
		panic("Sequential.Module: index out of bounds")
	}
	return s.modules[index]
}
