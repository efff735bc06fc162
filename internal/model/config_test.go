package model

import (
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/scratchnet/internal/matrix"
)

func TestDefaultTrainingConfig(t *testing.T) {
	cfg := DefaultTrainingConfig()

	assert.Equal(t, matrix.Tanh, cfg.HiddenActivation)
	assert.Equal(t, matrix.Identity, cfg.OutputActivation)
	assert.Equal(t, 60000, cfg.Epochs)
	assert.Equal(t, 0.02, cfg.LearningRate)
	assert.True(t, cfg.Shuffle)
	assert.Equal(t, 1.0, cfg.ClipNorm)
	assert.Equal(t, 5000, cfg.LogEvery)
	assert.Equal(t, os.Stdout, cfg.Output)
	assert.NoError(t, cfg.Validate())
}

func TestTrainingConfigValidate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*TrainingConfig)
		wantUnknownAc bool
	}{
		{"unknown hidden activation", func(c *TrainingConfig) { c.HiddenActivation = matrix.Activation(9) }, true},
		{"unknown output activation", func(c *TrainingConfig) { c.OutputActivation = matrix.Activation(9) }, true},
		{"zero epochs", func(c *TrainingConfig) { c.Epochs = 0 }, false},
		{"negative epochs", func(c *TrainingConfig) { c.Epochs = -5 }, false},
		{"NaN learning rate", func(c *TrainingConfig) { c.LearningRate = math.NaN() }, false},
		{"infinite learning rate", func(c *TrainingConfig) { c.LearningRate = math.Inf(1) }, false},
		{"negative clip norm", func(c *TrainingConfig) { c.ClipNorm = -1 }, false},
		{"infinite clip norm", func(c *TrainingConfig) { c.ClipNorm = math.Inf(1) }, false},
		{"negative log interval", func(c *TrainingConfig) { c.LogEvery = -1 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTrainingConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			assert.ErrorIs(t, err, ErrInvalidConfig)
			if tt.wantUnknownAc {
				assert.ErrorIs(t, err, matrix.ErrUnknownActivation)
			}
		})
	}
}

func TestTrainingConfigValidate_ClipDisabled(t *testing.T) {
	cfg := DefaultTrainingConfig()
	cfg.ClipNorm = 0
	cfg.LogEvery = 0
	cfg.Output = nil
	assert.NoError(t, cfg.Validate())
}
