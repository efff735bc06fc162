package optim

import (
	"fmt"

	"github.com/born-ml/scratchnet/internal/matrix"
	"github.com/born-ml/scratchnet/internal/nn"
)

// SGD implements batch gradient descent with optional L2 clipping.
//
// Update rule for each parameter p with summed gradient g over N samples:
//
//	g = clip(g, clipNorm)       // only when clipNorm > 0
//	p = p - (lr / N) * g
//
// There is no momentum and no per-parameter adaptive rate.
type SGD struct {
	params   []*nn.Parameter
	lr       float64
	clipNorm float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate, divided by the batch size at each step
	ClipNorm float64 // Per-tensor L2 ceiling on raw gradients; 0 disables
}

// NewSGD creates a new SGD optimizer over params.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	return &SGD{
		params:   params,
		lr:       config.LR,
		clipNorm: config.ClipNorm,
	}
}

// Step performs a single optimization step.
//
// Candidate values for every parameter are computed and checked for
// finiteness before any parameter is written, so a NaN or Inf in one
// update leaves all parameters at their previous values.
// Parameters with no gradient are skipped.
func (s *SGD) Step(batchSize int) error {
	if batchSize <= 0 {
		return fmt.Errorf("sgd: batch size %d: %w", batchSize, matrix.ErrShapeMismatch)
	}
	batchScale := s.lr / float64(batchSize)

	candidates := make([]*matrix.Matrix, len(s.params))
	for i, param := range s.params {
		grad := param.Grad()
		if grad == nil {
			continue
		}
		if s.clipNorm > 0 {
			grad = matrix.ClipByL2(grad, s.clipNorm)
		}
		updated, err := matrix.Sub(param.Value(), matrix.Scale(grad, batchScale))
		if err != nil {
			return fmt.Errorf("sgd: %s: %w", param.Name(), err)
		}
		if err := matrix.AssertFinite(updated, param.Name()); err != nil {
			return fmt.Errorf("sgd: %w", err)
		}
		candidates[i] = updated
	}

	for i, param := range s.params {
		if candidates[i] == nil {
			continue
		}
		if err := param.Value().CopyFrom(candidates[i]); err != nil {
			return fmt.Errorf("sgd: %s: %w", param.Name(), err)
		}
	}
	return nil
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// ClipNorm returns the per-tensor gradient ceiling (0 = disabled).
func (s *SGD) ClipNorm() float64 {
	return s.clipNorm
}

var _ Optimizer = (*SGD)(nil)
