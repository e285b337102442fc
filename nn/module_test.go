// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/born-ml/scalargrad/autodiff"
	"github.com/born-ml/scalargrad/nn"
	"github.com/born-ml/scalargrad/optim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestModuleInterface verifies that concrete types implement Module interface.
func TestModuleInterface(t *testing.T) {
	mlp, err := nn.NewMLP(3, []int{2, 1}, nn.WithSeed(1))
	require.NoError(t, err)

	tests := []struct {
		name       string
		module     nn.Module
		numOutputs int
		numParams  int
	}{
		{"Perceptron", nn.NewPerceptron(3, nn.WithSeed(1)), 1, 4},
		{"Layer", nn.NewLayer(3, 2, nn.WithSeed(1)), 2, 8},
		{"MLP", mlp, 1, 2*4 + 1*3},
		{"Sequential", nn.NewSequential(nn.NewLayer(3, 2), nn.NewTanh()), 2, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.module.Forward(nn.Inputs([]float64{0.1, 0.2, 0.3}))
			assert.Len(t, out, tt.numOutputs)
			assert.Len(t, tt.module.Parameters(), tt.numParams)
		})
	}
}

// TestTrainingStep runs one zero/backward/step cycle through the public API.
func TestTrainingStep(t *testing.T) {
	model, err := nn.NewMLP(2, []int{3, 1}, nn.WithSeed(5), nn.WithInitializer(nn.Xavier()))
	require.NoError(t, err)
	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})

	inputs := [][]float64{{1, -1}, {-1, 1}}
	targets := []float64{1, -1}

	lossAt := func() *autodiff.Value {
		preds := make([]*autodiff.Value, len(inputs))
		for i, x := range inputs {
			preds[i] = model.Forward(nn.Inputs(x))[0]
		}
		loss, err := nn.MSE(preds, targets)
		require.NoError(t, err)
		return loss
	}

	before := lossAt()
	optimizer.ZeroGrad()
	before.Backward()
	optimizer.Step()

	assert.Less(t, lossAt().Data(), before.Data())
}
