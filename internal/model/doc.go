// Package model implements a two-layer feed-forward network trained with
// manual backpropagation and plain batch gradient descent.
//
// # Architecture
//
//	X (N x in) -> Dense(W0, b0, hidden activation) -> A0 (N x hidden)
//	           -> Dense(W1, b1, output activation) -> A1 (N x out)
//
// Each epoch runs one forward pass over the whole batch, computes the mean
// squared error, backpropagates the summed error through both layers,
// optionally clips each gradient tensor by L2 norm, scales by lr/N, and
// updates all four parameters atomically.
//
// # Usage
//
//	cfg := model.DefaultTrainingConfig()
//	cfg.HiddenActivation = matrix.Sigmoid
//	cfg.OutputActivation = matrix.Sigmoid
//
//	net, err := model.NewNetwork(2, 4, 1, cfg)
//	if err != nil {
//	    return err
//	}
//	if err := net.Train(x, t); err != nil {
//	    return err
//	}
//	pred, err := net.Predict(x)
//
// # Concurrency
//
// A Network is not safe for concurrent use. Train may reorder the rows of
// the caller's x and t slices; the caller must not touch them until Train
// returns.
package model
