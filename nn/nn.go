// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides perceptron-based network building blocks.
//
// # Overview
//
// This package contains:
//   - Perceptron, Layer, MLP: tanh networks built from autodiff nodes
//   - Sequential: container for chaining modules
//   - Loss: MSE
//   - Initialization: Uniform, Xavier
//
// # Basic Usage
//
//	model, err := nn.NewMLP(3, []int{4, 4, 1}, nn.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out := model.Forward(nn.Inputs([]float64{1, 2, 3}))
package nn

import (
	"github.com/born-ml/scalargrad/autodiff"
	"github.com/born-ml/scalargrad/internal/nn"
)

// Module is the common interface for all network modules.
type Module = nn.Module

// Perceptron is a single tanh neuron.
type Perceptron = nn.Perceptron

// Layer is a fully connected row of perceptrons.
type Layer = nn.Layer

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// Sequential chains modules.
type Sequential = nn.Sequential

// Tanh is a parameter-free activation module.
type Tanh = nn.Tanh

// Option configures module construction.
type Option = nn.Option

// Initializer draws the initial value of one weight.
type Initializer = nn.Initializer

// Errors returned by constructors and losses.
var (
	ErrInvalidArchitecture = nn.ErrInvalidArchitecture
	ErrLengthMismatch      = nn.ErrLengthMismatch
	ErrEmptyBatch          = nn.ErrEmptyBatch
)

// NewPerceptron creates a neuron that takes numInputs inputs.
func NewPerceptron(numInputs int, opts ...Option) *Perceptron {
	return nn.NewPerceptron(numInputs, opts...)
}

// NewLayer creates numNeurons perceptrons with numInputs inputs each.
func NewLayer(numInputs, numNeurons int, opts ...Option) *Layer {
	return nn.NewLayer(numInputs, numNeurons, opts...)
}

// NewMLP creates a multi-layer perceptron.
//
// Example:
//
//	model, err := nn.NewMLP(3, []int{4, 4, 1})
func NewMLP(numInputs int, neuronsPerLayer []int, opts ...Option) (*MLP, error) {
	return nn.NewMLP(numInputs, neuronsPerLayer, opts...)
}

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// NewTanh creates a Tanh activation module.
func NewTanh() *Tanh {
	return nn.NewTanh()
}

// MSE computes the mean squared error as a graph node.
func MSE(predictions []*autodiff.Value, targets []float64) (*autodiff.Value, error) {
	return nn.MSE(predictions, targets)
}

// Inputs lifts a slice of literals into leaf nodes.
func Inputs[T autodiff.Number](xs []T) []*autodiff.Value {
	return nn.Inputs(xs)
}

// ZeroGrad resets the gradient of every parameter of m.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}

// Uniform draws weights from U(lo, hi).
func Uniform(lo, hi float64) Initializer {
	return nn.Uniform(lo, hi)
}

// Xavier draws weights with Glorot uniform initialization.
func Xavier() Initializer {
	return nn.Xavier()
}

// WithInitializer sets the weight initializer.
func WithInitializer(init Initializer) Option {
	return nn.WithInitializer(init)
}

// WithSeed makes initialization reproducible.
func WithSeed(seed uint64) Option {
	return nn.WithSeed(seed)
}
