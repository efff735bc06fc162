package model

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/born-ml/scratchnet/internal/matrix"
	"github.com/born-ml/scratchnet/internal/nn"
	"github.com/born-ml/scratchnet/internal/optim"
)

// State is the lifecycle stage of a Network.
type State int

const (
	// StateInitialized means parameters still hold their initial values.
	StateInitialized State = iota
	// StateTrained means at least one epoch has been committed.
	StateTrained
)

func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateTrained:
		return "trained"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Network is a two-layer fully connected network.
type Network struct {
	inputSize  int
	hiddenSize int
	outputSize int
	cfg        TrainingConfig

	hidden *nn.Dense // W0 (in x hidden), b0 (1 x hidden)
	output *nn.Dense // W1 (hidden x out), b1 (1 x out)
	loss   nn.MSELoss
	opt    *optim.SGD
	rng    *rand.Rand

	state      State
	lastOutput *matrix.Matrix
	lastLoss   float64
}

// Parameters is a snapshot of the four parameter matrices.
type Parameters struct {
	W0 *matrix.Matrix // inputSize x hiddenSize
	B0 *matrix.Matrix // 1 x hiddenSize
	W1 *matrix.Matrix // hiddenSize x outputSize
	B1 *matrix.Matrix // 1 x outputSize
}

// NewNetwork creates a network with Glorot-initialized weights and zero
// biases. The config is validated here, so an unknown activation fails
// before any training starts.
func NewNetwork(inputSize, hiddenSize, outputSize int, cfg TrainingConfig) (*Network, error) {
	if inputSize <= 0 || hiddenSize <= 0 || outputSize <= 0 {
		return nil, fmt.Errorf("%w: layer sizes must be positive, got %d/%d/%d",
			ErrInvalidConfig, inputSize, hiddenSize, outputSize)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	//nolint:gosec // weight init and shuffling are not security-critical
	rng := rand.New(rand.NewSource(seed))

	// W0 is drawn before W1.
	hidden, err := nn.NewDense(rng, 0, inputSize, hiddenSize, cfg.HiddenActivation, cfg.Parallel)
	if err != nil {
		return nil, err
	}
	output, err := nn.NewDense(rng, 1, hiddenSize, outputSize, cfg.OutputActivation, cfg.Parallel)
	if err != nil {
		return nil, err
	}

	params := []*nn.Parameter{output.Weight(), output.Bias(), hidden.Weight(), hidden.Bias()}

	return &Network{
		inputSize:  inputSize,
		hiddenSize: hiddenSize,
		outputSize: outputSize,
		cfg:        cfg,
		hidden:     hidden,
		output:     output,
		opt:        optim.NewSGD(params, optim.SGDConfig{LR: cfg.LearningRate, ClipNorm: cfg.ClipNorm}),
		rng:        rng,
		state:      StateInitialized,
	}, nil
}

// pass holds the tensors of one forward pass.
type pass struct {
	hidden *nn.DenseCache // Z0, A0
	output *nn.DenseCache // Z1, A1
}

func (n *Network) forward(x *matrix.Matrix) (*pass, error) {
	h, err := n.hidden.Forward(x)
	if err != nil {
		return nil, fmt.Errorf("hidden layer: %w", err)
	}
	if err := matrix.AssertFinite(h.A, "A0"); err != nil {
		return nil, err
	}
	o, err := n.output.Forward(h.A)
	if err != nil {
		return nil, fmt.Errorf("output layer: %w", err)
	}
	if err := matrix.AssertFinite(o.A, "A1"); err != nil {
		return nil, err
	}
	return &pass{hidden: h, output: o}, nil
}

// Forward runs one forward pass and returns A1 (N x outputSize).
func (n *Network) Forward(x *matrix.Matrix) (*matrix.Matrix, error) {
	p, err := n.forward(x)
	if err != nil {
		return nil, fmt.Errorf("forward: %w", err)
	}
	return p.output.A, nil
}

// Predict runs a forward pass over rows of x without touching parameters.
//
// Returns matrix.ErrShapeMismatch for empty or ragged x, or when the
// row width differs from the input size.
func (n *Network) Predict(x [][]float64) ([][]float64, error) {
	xm, err := matrix.FromRows(x)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}
	if xm.Cols() != n.inputSize {
		return nil, fmt.Errorf("predict: input has %d columns, network expects %d: %w",
			xm.Cols(), n.inputSize, matrix.ErrShapeMismatch)
	}
	a1, err := n.Forward(xm)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}
	return a1.ToRows(), nil
}

// State returns the lifecycle stage.
func (n *Network) State() State {
	return n.state
}

// LastOutput returns a copy of A1 from the most recent epoch, or nil if
// the network has not been trained.
func (n *Network) LastOutput() *matrix.Matrix {
	if n.lastOutput == nil {
		return nil
	}
	return n.lastOutput.Clone()
}

// Loss returns the mean squared error of the most recent epoch.
func (n *Network) Loss() float64 {
	return n.lastLoss
}

// Parameters returns deep copies of W0, b0, W1 and b1.
func (n *Network) Parameters() Parameters {
	return Parameters{
		W0: n.hidden.Weight().Value().Clone(),
		B0: n.hidden.Bias().Value().Clone(),
		W1: n.output.Weight().Value().Clone(),
		B1: n.output.Bias().Value().Clone(),
	}
}

// Sizes returns (inputSize, hiddenSize, outputSize).
func (n *Network) Sizes() (int, int, int) {
	return n.inputSize, n.hiddenSize, n.outputSize
}

// Config returns the configuration the network was built with.
func (n *Network) Config() TrainingConfig {
	return n.cfg
}
