package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/scratchnet/internal/matrix"
	"github.com/born-ml/scratchnet/internal/parallel"
)

// Dense implements a fully connected layer followed by an activation.
//
// Performs the transformation: a = f(x @ W + b)
// where:
//   - x is the input with shape [batch_size, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias row with shape [1, out_features]
//   - a is the output with shape [batch_size, out_features]
//
// Weights are initialized with Glorot/Xavier uniform draws, biases with zeros.
type Dense struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter
	bias        *Parameter
	activation  matrix.Activation
	par         parallel.Config
}

// DenseCache holds the tensors of one forward pass that Backward needs.
type DenseCache struct {
	Input *matrix.Matrix // x
	Z     *matrix.Matrix // x @ W + b
	A     *matrix.Matrix // f(Z)
}

// NewDense creates a Dense layer. Its parameters are named "W<index>" and
// "b<index>".
//
// Returns ErrUnknownActivation if activation is not a supported kind.
func NewDense(rng *rand.Rand, index, inFeatures, outFeatures int,
	activation matrix.Activation, par parallel.Config,
) (*Dense, error) {
	if !activation.Valid() {
		return nil, fmt.Errorf("dense layer %d: %v: %w", index, activation, matrix.ErrUnknownActivation)
	}
	weight := matrix.Glorot(rng, inFeatures, outFeatures)
	bias := matrix.Uniform(rng, 1, outFeatures, 0, 0)

	return &Dense{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      NewParameter(fmt.Sprintf("W%d", index), weight),
		bias:        NewParameter(fmt.Sprintf("b%d", index), bias),
		activation:  activation,
		par:         par,
	}, nil
}

// Forward computes Z = x @ W + b and A = f(Z).
func (d *Dense) Forward(x *matrix.Matrix) (*DenseCache, error) {
	xw, err := matrix.MatMulWith(x, d.weight.Value(), d.par)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.weight.Name(), err)
	}
	z, err := matrix.AddRowwise(xw, d.bias.Value())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.bias.Name(), err)
	}
	a, err := matrix.Activate(z, d.activation)
	if err != nil {
		return nil, err
	}
	return &DenseCache{Input: x, Z: z, A: a}, nil
}

// Backward propagates dA (the loss gradient w.r.t. this layer's output)
// through the layer.
//
// Stores dW = xᵗ @ dZ and db = sum_rows(dZ) on the parameters, where
// dZ = dA ⊙ f'(A). When wantInputGrad is true it also returns
// dX = dZ @ Wᵗ, computed with the weights as they were during Forward;
// otherwise it returns nil.
func (d *Dense) Backward(cache *DenseCache, dA *matrix.Matrix, wantInputGrad bool) (*matrix.Matrix, error) {
	dZ := dA
	if d.activation != matrix.Identity {
		deriv, err := matrix.ActivationDerivative(cache.A, d.activation)
		if err != nil {
			return nil, err
		}
		if dZ, err = matrix.Mul(dA, deriv); err != nil {
			return nil, fmt.Errorf("d%s: %w", d.weight.Name(), err)
		}
	}

	dW, err := matrix.MatMulWith(matrix.Transpose(cache.Input), dZ, d.par)
	if err != nil {
		return nil, fmt.Errorf("d%s: %w", d.weight.Name(), err)
	}
	d.weight.SetGrad(dW)
	d.bias.SetGrad(matrix.SumColumns(dZ))

	if !wantInputGrad {
		return nil, nil
	}
	dX, err := matrix.MatMulWith(dZ, matrix.Transpose(d.weight.Value()), d.par)
	if err != nil {
		return nil, fmt.Errorf("input grad: %w", err)
	}
	return dX, nil
}

// Weight returns the weight parameter.
func (d *Dense) Weight() *Parameter {
	return d.weight
}

// Bias returns the bias parameter.
func (d *Dense) Bias() *Parameter {
	return d.bias
}

// Activation returns the layer's activation kind.
func (d *Dense) Activation() matrix.Activation {
	return d.activation
}

// InFeatures returns the input feature count.
func (d *Dense) InFeatures() int {
	return d.inFeatures
}

// OutFeatures returns the output feature count.
func (d *Dense) OutFeatures() int {
	return d.outFeatures
}

// Parameters returns the weight and bias, in that order.
func (d *Dense) Parameters() []*Parameter {
	return []*Parameter{d.weight, d.bias}
}
