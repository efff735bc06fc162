// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package model provides the two-layer trainable network.
//
// Example:
//
//	cfg := model.DefaultTrainingConfig()
//	cfg.HiddenActivation = matrix.Sigmoid
//	cfg.OutputActivation = matrix.Sigmoid
//	cfg.LearningRate = 4
//
//	net, err := model.NewNetwork(2, 4, 1, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := net.Train(x, t); err != nil {
//	    log.Fatal(err)
//	}
//	pred, err := net.Predict(x)
package model

import (
	"github.com/born-ml/scratchnet/internal/model"
)

// Network is a two-layer fully connected network.
type Network = model.Network

// Parameters is a snapshot of W0, b0, W1 and b1.
type Parameters = model.Parameters

// TrainingConfig configures activations, epochs, learning rate, shuffling,
// clipping and progress output.
type TrainingConfig = model.TrainingConfig

// State is the lifecycle stage of a Network.
type State = model.State

// Lifecycle states.
const (
	StateInitialized = model.StateInitialized
	StateTrained     = model.StateTrained
)

// ErrInvalidConfig is returned by NewNetwork for unusable configurations.
var ErrInvalidConfig = model.ErrInvalidConfig

// DefaultTrainingConfig returns tanh/identity, 60000 epochs, lr 0.02,
// shuffling on, clip norm 1.0, progress every 5000 epochs to stdout.
func DefaultTrainingConfig() TrainingConfig {
	return model.DefaultTrainingConfig()
}

// NewNetwork creates a network with Glorot weights and zero biases.
func NewNetwork(inputSize, hiddenSize, outputSize int, cfg TrainingConfig) (*Network, error) {
	return model.NewNetwork(inputSize, hiddenSize, outputSize, cfg)
}
