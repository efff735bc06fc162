// Package nn provides the layer building blocks of the training engine:
// trainable parameters, a dense layer with fused activation and manual
// backward pass, and the mean squared error loss.
package nn
