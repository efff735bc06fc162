// Package optim implements parameter update rules for training.
//
// This package provides:
//   - Optimizer interface: Base interface for update rules
//   - SGD: plain batch gradient descent with per-tensor L2 clipping
//
// Example usage:
//
//	optimizer := optim.NewSGD(params, optim.SGDConfig{
//	    LR:       0.02,
//	    ClipNorm: 1.0,
//	})
//
//	for epoch := range epochs {
//	    // forward + backward set parameter gradients
//	    if err := optimizer.Step(batchSize); err != nil {
//	        return err
//	    }
//	    optimizer.ZeroGrad()
//	}
package optim

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies the gradients currently stored on the parameters.
	//
	// batchSize is the number of samples the gradients were summed over.
	// Either every parameter is updated or, on error, none is.
	Step(batchSize int) error

	// ZeroGrad clears all parameter gradients.
	ZeroGrad()

	// LR returns the current learning rate.
	LR() float64
}
