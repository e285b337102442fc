package nn

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Layer is a fully connected row of perceptrons.
//
// Every neuron sees the same inputs; Forward returns one output per neuron.
type Layer struct {
	numInputs int
	neurons   []*Perceptron
}

// NewLayer creates numNeurons perceptrons with numInputs inputs each.
func NewLayer(numInputs, numNeurons int, opts ...Option) *Layer {
	return newLayer(numInputs, numNeurons, buildOptions(opts))
}

func newLayer(numInputs, numNeurons int, o *options) *Layer {
	if numNeurons < 0 {
		panic(fmt.Sprintf("NewLayer: negative neuron count %d", numNeurons))
	}

	neurons := make([]*Perceptron, numNeurons)
	for i := range neurons {
		neurons[i] = newPerceptron(numInputs, numNeurons, o)
	}
	return &Layer{numInputs: numInputs, neurons: neurons}
}

// Forward maps inputs through every neuron.
func (l *Layer) Forward(inputs []*autodiff.Value) []*autodiff.Value {
	outputs := make([]*autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		outputs[i] = n.Activate(inputs)
	}
	return outputs
}

// Parameters returns the parameters of each neuron in order.
func (l *Layer) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// Neurons returns the perceptrons of the layer.
func (l *Layer) Neurons() []*Perceptron {
	return l.neurons
}

// InFeatures returns the input width.
func (l *Layer) InFeatures() int {
	return l.numInputs
}

// OutFeatures returns the number of neurons.
func (l *Layer) OutFeatures() int {
	return len(l.neurons)
}
