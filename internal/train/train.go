// Package train runs the classic full-batch training loop over an nn.Module.
//
// One epoch is: forward every sample, mean squared error against the
// targets, zero the parameter gradients, backward from the loss, one
// optimizer step.
package train

import (
	"errors"
	"fmt"
	"log"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/nn"
	"github.com/born-ml/scalargrad/internal/optim"
)

// Common errors.
var (
	ErrInvalidConfig    = errors.New("invalid training config")
	ErrUnknownOptimizer = errors.New("unknown optimizer")
	ErrNonFiniteLoss    = errors.New("loss is not finite")
	ErrDataMismatch     = errors.New("inputs and targets differ in length")
)

// Optimizer names accepted by Config.Optimizer.
const (
	OptimizerSGD  = "sgd"
	OptimizerAdam = "adam"
)

// Config controls Fit.
type Config struct {
	Epochs    int         // Number of full passes over the data
	LR        float64     // Learning rate
	Momentum  float64     // SGD momentum, [0, 1)
	Optimizer string      // "sgd" (default) or "adam"
	LogEvery  int         // Log every N epochs; 0 disables logging
	Logger    *log.Logger // Destination for progress lines (default: log.Default())
}

// DefaultConfig returns the settings of the parity demo: 500 epochs of
// plain SGD with learning rate 0.1.
func DefaultConfig() Config {
	return Config{
		Epochs:    500,
		LR:        0.1,
		Optimizer: OptimizerSGD,
		LogEvery:  50,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Epochs <= 0:
		return fmt.Errorf("%w: epochs must be positive, got %d", ErrInvalidConfig, c.Epochs)
	case !(c.LR > 0):
		return fmt.Errorf("%w: learning rate must be positive, got %g", ErrInvalidConfig, c.LR)
	case c.Momentum < 0 || c.Momentum >= 1:
		return fmt.Errorf("%w: momentum must be in [0, 1), got %g", ErrInvalidConfig, c.Momentum)
	case c.LogEvery < 0:
		return fmt.Errorf("%w: log interval must not be negative, got %d", ErrInvalidConfig, c.LogEvery)
	}
	switch c.Optimizer {
	case "", OptimizerSGD, OptimizerAdam:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOptimizer, c.Optimizer)
	}
}

func (c Config) optimizer(params []*autodiff.Value) optim.Optimizer {
	if c.Optimizer == OptimizerAdam {
		return optim.NewAdam(params, optim.AdamConfig{LR: c.LR})
	}
	return optim.NewSGD(params, optim.SGDConfig{LR: c.LR, Momentum: c.Momentum})
}

// History holds the loss of every completed epoch.
type History struct {
	Losses []float64
}

// Final returns the loss of the last epoch, NaN if none ran.
func (h History) Final() float64 {
	if len(h.Losses) == 0 {
		return math.NaN()
	}
	return h.Losses[len(h.Losses)-1]
}

// Best returns the lowest loss and its epoch index, (NaN, -1) if none ran.
func (h History) Best() (float64, int) {
	if len(h.Losses) == 0 {
		return math.NaN(), -1
	}
	i := floats.MinIdx(h.Losses)
	return h.Losses[i], i
}

// Fit trains model on (inputs, targets), using the first output of the
// model as its prediction for each sample.
//
// Training stops with ErrNonFiniteLoss, before the update step, as soon as
// the loss becomes NaN or infinite; the returned History covers every
// epoch up to and including the failing one.
func Fit(model nn.Module, inputs [][]float64, targets []float64, cfg Config) (History, error) {
	var history History

	if err := cfg.Validate(); err != nil {
		return history, err
	}
	if len(inputs) != len(targets) {
		return history, fmt.Errorf("%w: %d inputs, %d targets", ErrDataMismatch, len(inputs), len(targets))
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	opt := cfg.optimizer(model.Parameters())
	history.Losses = make([]float64, 0, cfg.Epochs)

	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		loss, err := nn.MSE(forwardAll(model, inputs), targets)
		if err != nil {
			return history, fmt.Errorf("epoch %d: %w", epoch, err)
		}

		// Gradients from the previous epoch would otherwise accumulate.
		opt.ZeroGrad()
		loss.Backward()

		history.Losses = append(history.Losses, loss.Data())
		if math.IsNaN(loss.Data()) || math.IsInf(loss.Data(), 0) {
			return history, fmt.Errorf("epoch %d: %w: %g", epoch, ErrNonFiniteLoss, loss.Data())
		}
		opt.Step()

		if cfg.LogEvery > 0 && (epoch%cfg.LogEvery == 0 || epoch == cfg.Epochs) {
			logger.Printf("epoch %d/%d loss %.6f", epoch, cfg.Epochs, loss.Data())
		}
	}

	return history, nil
}

// Predict returns the first model output for each input.
func Predict(model nn.Module, inputs [][]float64) []float64 {
	return nn.Data(forwardAll(model, inputs))
}

func forwardAll(model nn.Module, inputs [][]float64) []*autodiff.Value {
	preds := make([]*autodiff.Value, len(inputs))
	for i, x := range inputs {
		preds[i] = model.Forward(nn.Inputs(x))[0]
	}
	return preds
}
