package nn

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Perceptron is a single tanh neuron.
//
// Computes: y = tanh(b + sum_i x_i * w_i)
//
// Weights are drawn from the configured initializer, the bias starts at 0.
//
// Example:
//
//	p := nn.NewPerceptron(3, nn.WithSeed(1))
//	y := p.Activate(nn.Inputs([]float64{1, 2, 3}))
type Perceptron struct {
	weights []*autodiff.Value
	bias    *autodiff.Value
}

// NewPerceptron creates a neuron that takes numInputs inputs.
func NewPerceptron(numInputs int, opts ...Option) *Perceptron {
	return newPerceptron(numInputs, 1, buildOptions(opts))
}

func newPerceptron(numInputs, fanOut int, o *options) *Perceptron {
	if numInputs < 0 {
		panic(fmt.Sprintf("NewPerceptron: negative input count %d", numInputs))
	}

	weights := make([]*autodiff.Value, numInputs)
	for i := range weights {
		weights[i] = autodiff.NewLabeled("weight", o.init(o.rng, numInputs, fanOut))
	}

	return &Perceptron{
		weights: weights,
		bias:    autodiff.NewLabeled("bias", 0.0),
	}
}

// Activate builds tanh(bias + sum x_i*w_i) and returns the output node.
//
// Panics if len(inputs) differs from the number of weights.
func (p *Perceptron) Activate(inputs []*autodiff.Value) *autodiff.Value {
	if len(inputs) != len(p.weights) {
		panic(fmt.Sprintf("Perceptron.Activate: expected %d inputs, got %d", len(p.weights), len(inputs)))
	}

	sum := p.bias
	for i, x := range inputs {
		sum = sum.Add(x.Mul(p.weights[i]))
	}
	return sum.Tanh()
}

// Forward implements Module. The result holds a single node.
func (p *Perceptron) Forward(inputs []*autodiff.Value) []*autodiff.Value {
	return []*autodiff.Value{p.Activate(inputs)}
}

// Parameters returns the weights followed by the bias.
func (p *Perceptron) Parameters() []*autodiff.Value {
	params := make([]*autodiff.Value, 0, len(p.weights)+1)
	params = append(params, p.weights...)
	return append(params, p.bias)
}

// Weights returns the weight leaves.
func (p *Perceptron) Weights() []*autodiff.Value {
	return p.weights
}

// Bias returns the bias leaf.
func (p *Perceptron) Bias() *autodiff.Value {
	return p.bias
}

// NumInputs returns the expected input width.
func (p *Perceptron) NumInputs() int {
	return len(p.weights)
}
