package optim

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// SGD implements Stochastic Gradient Descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
type SGD struct {
	params     []*autodiff.Value
	lr         float64
	momentum   float64
	velocities []float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over params.
func NewSGD(params []*autodiff.Value, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	s := &SGD{
		params:   params,
		lr:       config.LR,
		momentum: config.Momentum,
	}
	if s.momentum != 0 {
		s.velocities = make([]float64, len(params))
	}
	return s
}

// Step performs a single optimization step.
func (s *SGD) Step() {
	for i, p := range s.params {
		g := p.Grad()
		if s.momentum == 0 {
			p.SetData(p.Data() - s.lr*g)
			continue
		}
		s.velocities[i] = s.momentum*s.velocities[i] + g
		p.SetData(p.Data() - s.lr*s.velocities[i])
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	zeroGrads(s.params)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// StateDict returns the momentum buffers keyed "velocity.{param_index}".
//
// Without momentum, returns an empty map.
func (s *SGD) StateDict() map[string]float64 {
	state := make(map[string]float64)
	for i, v := range s.velocities {
		state[fmt.Sprintf("velocity.%d", i)] = v
	}
	return state
}

// LoadStateDict restores momentum buffers written by StateDict.
//
// Missing keys leave the buffer at zero. Without momentum the state is ignored.
func (s *SGD) LoadStateDict(state map[string]float64) error {
	if s.momentum == 0 {
		return nil
	}

	velocities := make([]float64, len(s.params))
	for key, v := range state {
		idx, ok := strings.CutPrefix(key, "velocity.")
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownStateKey, key)
		}
		i, err := strconv.Atoi(idx)
		if err != nil || i < 0 || i >= len(velocities) {
			return fmt.Errorf("%w: %q", ErrUnknownStateKey, key)
		}
		velocities[i] = v
	}
	s.velocities = velocities
	return nil
}
