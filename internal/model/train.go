package model

import (
	"fmt"

	"github.com/born-ml/scratchnet/internal/matrix"
)

// Train runs cfg.Epochs full-batch gradient descent steps on (x, t).
//
// x must be N x inputSize and t N x outputSize with N > 0; both are
// checked before anything is mutated and violations return
// matrix.ErrShapeMismatch. When shuffling is enabled the rows of x and t
// are permuted in place (pairs stay aligned).
//
// Train stops at the first error. Parameter updates are atomic per epoch:
// an epoch that fails leaves the parameters of the previous epoch intact.
func (n *Network) Train(x, t [][]float64) error {
	if err := n.validateDataset(x, t); err != nil {
		return fmt.Errorf("train: %w", err)
	}

	var xm, tm *matrix.Matrix
	load := func() (err error) {
		if xm, err = matrix.FromRows(x); err != nil {
			return err
		}
		tm, err = matrix.FromRows(t)
		return err
	}
	if !n.cfg.Shuffle {
		if err := load(); err != nil {
			return fmt.Errorf("train: %w", err)
		}
	}

	batchSize := len(x)
	for epoch := 0; epoch < n.cfg.Epochs; epoch++ {
		if n.cfg.Shuffle {
			if err := matrix.ShufflePaired(n.rng, x, t); err != nil {
				return fmt.Errorf("train: epoch %d: %w", epoch, err)
			}
			if err := load(); err != nil {
				return fmt.Errorf("train: epoch %d: %w", epoch, err)
			}
		}

		mse, a1, err := n.step(xm, tm, batchSize)
		if err != nil {
			return fmt.Errorf("train: epoch %d: %w", epoch, err)
		}

		n.lastOutput = a1
		n.lastLoss = mse
		n.state = StateTrained

		if n.cfg.LogEvery > 0 && epoch%n.cfg.LogEvery == 0 {
			n.logf("Epoch %d: MSE=%.6f\n", epoch, mse)
		}
	}

	n.logf("Final MSE: %.6f\n", n.lastLoss)
	return nil
}

// step runs forward, backward and update for one epoch and returns the
// pre-update MSE and A1.
func (n *Network) step(x, t *matrix.Matrix, batchSize int) (float64, *matrix.Matrix, error) {
	p, err := n.forward(x)
	if err != nil {
		return 0, nil, err
	}
	a1 := p.output.A

	mse, err := n.loss.Forward(a1, t)
	if err != nil {
		return 0, nil, err
	}

	dA1, err := n.loss.Backward(a1, t)
	if err != nil {
		return 0, nil, err
	}
	dA0, err := n.output.Backward(p.output, dA1, true)
	if err != nil {
		return 0, nil, fmt.Errorf("output layer backward: %w", err)
	}
	if _, err := n.hidden.Backward(p.hidden, dA0, false); err != nil {
		return 0, nil, fmt.Errorf("hidden layer backward: %w", err)
	}

	if err := n.opt.Step(batchSize); err != nil {
		return 0, nil, err
	}
	n.opt.ZeroGrad()

	return mse, a1, nil
}

func (n *Network) validateDataset(x, t [][]float64) error {
	if len(x) != len(t) {
		return fmt.Errorf("X/T length mismatch: %d vs %d: %w", len(x), len(t), matrix.ErrShapeMismatch)
	}
	xCols, err := matrix.ValidateRows(x)
	if err != nil {
		return fmt.Errorf("X: %w", err)
	}
	tCols, err := matrix.ValidateRows(t)
	if err != nil {
		return fmt.Errorf("T: %w", err)
	}
	if xCols != n.inputSize {
		return fmt.Errorf("X has %d columns, network expects %d: %w", xCols, n.inputSize, matrix.ErrShapeMismatch)
	}
	if tCols != n.outputSize {
		return fmt.Errorf("T has %d columns, network expects %d: %w", tCols, n.outputSize, matrix.ErrShapeMismatch)
	}
	return nil
}

// logf writes a progress line. Write errors are ignored: progress output
// never fails training.
func (n *Network) logf(format string, args ...any) {
	if n.cfg.Output == nil {
		return
	}
	_, _ = fmt.Fprintf(n.cfg.Output, format, args...)
}
