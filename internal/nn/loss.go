package nn

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// MSE computes the mean squared error as a graph node.
//
// Loss = sum((p_i - t_i) * (p_i - t_i)) / n
//
// The square is a product, not Pow: ln of a negative residual would put NaN
// on the exponent constant.
//
// Returns ErrEmptyBatch for no predictions and ErrLengthMismatch when the
// slices differ in length.
func MSE(predictions []*autodiff.Value, targets []float64) (*autodiff.Value, error) {
	if len(predictions) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(predictions) != len(targets) {
		return nil, fmt.Errorf("%w: %d predictions, %d targets", ErrLengthMismatch, len(predictions), len(targets))
	}

	loss := autodiff.Constant(0)
	for i, p := range predictions {
		diff := autodiff.Sub(p, targets[i])
		loss = loss.Add(diff.Mul(diff))
	}
	return autodiff.Div(loss, len(targets)), nil
}
