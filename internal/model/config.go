package model

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/born-ml/scratchnet/internal/matrix"
	"github.com/born-ml/scratchnet/internal/parallel"
)

// ErrInvalidConfig is returned by NewNetwork for unusable configurations.
var ErrInvalidConfig = errors.New("model: invalid config")

// Defaults used by DefaultTrainingConfig.
const (
	DefaultEpochs       = 60000
	DefaultLearningRate = 0.02
	DefaultClipNorm     = 1.0
	DefaultLogEvery     = 5000
)

// TrainingConfig holds everything that shapes a training run.
type TrainingConfig struct {
	HiddenActivation matrix.Activation // Activation of the hidden layer (default: tanh)
	OutputActivation matrix.Activation // Activation of the output layer (default: identity)
	Epochs           int               // Full-batch passes per Train call (default: 60000)
	LearningRate     float64           // Divided by the batch size at each step (default: 0.02)
	Shuffle          bool              // Reorder the dataset before every epoch (default: true)
	ClipNorm         float64           // Per-tensor L2 ceiling on gradients, 0 disables (default: 1.0)

	LogEvery int       // Progress line every LogEvery epochs, 0 disables (default: 5000)
	Output   io.Writer // Progress sink; nil silences all output (default: os.Stdout)
	Seed     int64     // RNG seed for init and shuffling; 0 picks a time-based seed

	Parallel parallel.Config // Row splitting for matrix products
}

// DefaultTrainingConfig returns the standard configuration.
func DefaultTrainingConfig() TrainingConfig {
	return TrainingConfig{
		HiddenActivation: matrix.Tanh,
		OutputActivation: matrix.Identity,
		Epochs:           DefaultEpochs,
		LearningRate:     DefaultLearningRate,
		Shuffle:          true,
		ClipNorm:         DefaultClipNorm,
		LogEvery:         DefaultLogEvery,
		Output:           os.Stdout,
		Parallel:         parallel.DefaultConfig(),
	}
}

// Validate reports the first problem with c, if any.
//
// Unknown activations wrap both ErrInvalidConfig and
// matrix.ErrUnknownActivation.
func (c TrainingConfig) Validate() error {
	if !c.HiddenActivation.Valid() {
		return fmt.Errorf("%w: hidden activation %v: %w", ErrInvalidConfig, c.HiddenActivation, matrix.ErrUnknownActivation)
	}
	if !c.OutputActivation.Valid() {
		return fmt.Errorf("%w: output activation %v: %w", ErrInvalidConfig, c.OutputActivation, matrix.ErrUnknownActivation)
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("%w: epochs must be positive, got %d", ErrInvalidConfig, c.Epochs)
	}
	if !isFinite(c.LearningRate) {
		return fmt.Errorf("%w: learning rate must be finite, got %v", ErrInvalidConfig, c.LearningRate)
	}
	if !isFinite(c.ClipNorm) || c.ClipNorm < 0 {
		return fmt.Errorf("%w: clip norm must be finite and >= 0, got %v", ErrInvalidConfig, c.ClipNorm)
	}
	if c.LogEvery < 0 {
		return fmt.Errorf("%w: log interval must be >= 0, got %d", ErrInvalidConfig, c.LogEvery)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
