package nn

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// MLP is a multi-layer perceptron.
//
// Layer i takes the outputs of layer i-1 as inputs; the first layer takes
// the network inputs. Forward returns the outputs of the last layer.
//
// Example:
//
//	model, err := nn.NewMLP(3, []int{4, 4, 1}, nn.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	out := model.Forward(nn.Inputs([]float64{1, 1, 1}))
type MLP struct {
	numInputs int
	layers    []*Layer
	seq       *Sequential
}

// NewMLP creates an MLP with numInputs inputs and one layer per entry of
// neuronsPerLayer.
//
// Returns ErrInvalidArchitecture when neuronsPerLayer is empty or any width
// is not positive.
func NewMLP(numInputs int, neuronsPerLayer []int, opts ...Option) (*MLP, error) {
	if numInputs <= 0 {
		return nil, fmt.Errorf("%w: input width %d", ErrInvalidArchitecture, numInputs)
	}
	if len(neuronsPerLayer) == 0 {
		return nil, fmt.Errorf("%w: no layers", ErrInvalidArchitecture)
	}
	for i, n := range neuronsPerLayer {
		if n <= 0 {
			return nil, fmt.Errorf("%w: layer %d has %d neurons", ErrInvalidArchitecture, i, n)
		}
	}

	o := buildOptions(opts)
	layers := make([]*Layer, len(neuronsPerLayer))
	seq := NewSequential()
	in := numInputs
	for i, n := range neuronsPerLayer {
		layers[i] = newLayer(in, n, o)
		seq.Add(layers[i])
		in = n
	}

	return &MLP{
		numInputs: numInputs,
		layers:    layers,
		seq:       seq,
	}, nil
}

// Forward feeds inputs through every layer.
func (m *MLP) Forward(inputs []*autodiff.Value) []*autodiff.Value {
	return m.seq.Forward(inputs)
}

// Parameters returns every weight and bias, layer by layer.
func (m *MLP) Parameters() []*autodiff.Value {
	return m.seq.Parameters()
}

// Layers returns the layers in order.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// InFeatures returns the input width.
func (m *MLP) InFeatures() int {
	return m.numInputs
}

// OutFeatures returns the width of the last layer.
func (m *MLP) OutFeatures() int {
	return m.layers[len(m.layers)-1].OutFeatures()
}
