package nn

import (
	"github.com/born-ml/scratchnet/internal/matrix"
)

// Parameter represents a trainable parameter in a neural network.
//
// The value matrix keeps its identity for the parameter's lifetime:
// optimizers overwrite its contents in place, so its shape never changes.
//
// Example:
//
//	weight := nn.NewParameter("W0", matrix.Glorot(rng, 2, 4))
//	w := weight.Value()
//	g := weight.Grad() // nil until a backward pass ran
type Parameter struct {
	name  string         // Parameter name (e.g., "W0", "b1")
	value *matrix.Matrix // The parameter values
	grad  *matrix.Matrix // Gradient (computed during backward pass)
}

// NewParameter creates a new trainable parameter.
func NewParameter(name string, value *matrix.Matrix) *Parameter {
	return &Parameter{
		name:  name,
		value: value,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the parameter matrix.
func (p *Parameter) Value() *matrix.Matrix {
	return p.value
}

// Grad returns the gradient, or nil before the first backward pass.
func (p *Parameter) Grad() *matrix.Matrix {
	return p.grad
}

// SetGrad sets the gradient matrix.
func (p *Parameter) SetGrad(grad *matrix.Matrix) {
	p.grad = grad
}

// ZeroGrad clears the gradient.
func (p *Parameter) ZeroGrad() {
	p.grad = nil
}
