// Package optim implements the parameter update step of a training loop.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Adam: Adaptive Moment Estimation
//
// Gradients live on the parameter nodes themselves, so Step reads
// p.Grad() and writes p.SetData directly.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
//
//	for epoch := range epochs {
//	    loss, _ := nn.MSE(predict(model, inputs), targets)
//	    optimizer.ZeroGrad()
//	    loss.Backward()
//	    optimizer.Step()
//	}
package optim

import (
	"errors"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// ErrUnknownStateKey is returned by LoadStateDict for keys that match no parameter.
var ErrUnknownStateKey = errors.New("unknown optimizer state key")

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one update to every parameter using its current gradient.
	Step()

	// ZeroGrad sets every parameter gradient to 0.
	//
	// Backward accumulates, so this must run before each backward pass.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

func zeroGrads(params []*autodiff.Value) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
