package nn

import (
	"fmt"

	"github.com/born-ml/scratchnet/internal/matrix"
)

// MSELoss computes Mean Squared Error loss.
//
// Loss = mean((targets - predictions)²)
//
// The gradient used for training is the summed form A - T without the
// 2/N factor; batch averaging is applied once by the optimizer.
//
// Example:
//
//	var mse nn.MSELoss
//	loss, err := mse.Forward(predictions, targets)
//	dA, err := mse.Backward(predictions, targets)
type MSELoss struct{}

// Forward returns mean((targets - predictions)²) over all elements.
func (MSELoss) Forward(predictions, targets *matrix.Matrix) (float64, error) {
	diff, err := matrix.Sub(targets, predictions)
	if err != nil {
		return 0, fmt.Errorf("mse: %w", err)
	}
	sq, err := matrix.Mul(diff, diff)
	if err != nil {
		return 0, fmt.Errorf("mse: %w", err)
	}
	return matrix.Mean(sq), nil
}

// Backward returns dLoss/dPredictions = -(targets - predictions).
func (MSELoss) Backward(predictions, targets *matrix.Matrix) (*matrix.Matrix, error) {
	diff, err := matrix.Sub(targets, predictions)
	if err != nil {
		return nil, fmt.Errorf("mse grad: %w", err)
	}
	return matrix.Scale(diff, -1), nil
}
