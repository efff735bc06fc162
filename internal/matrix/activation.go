package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Activation is the closed set of elementwise nonlinearities.
//
// Each kind has a forward function and a derivative expressed in terms of
// the forward output, so backprop never recomputes the pre-activation.
// The zero value is Sigmoid.
type Activation uint8

// Supported activations.
const (
	Sigmoid Activation = iota
	Tanh
	Identity
)

// Saturated sigmoid outputs are kept one ulp inside (0, 1).
var (
	sigmoidLow  = math.Nextafter(0, 1)
	sigmoidHigh = math.Nextafter(1, 0)
)

// ParseActivation resolves a case-insensitive activation name.
// Accepted names: "sigmoid" / "sig", "tanh", "identity" / "lin".
func ParseActivation(name string) (Activation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sigmoid", "sig":
		return Sigmoid, nil
	case "tanh":
		return Tanh, nil
	case "identity", "lin":
		return Identity, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownActivation)
	}
}

// Valid reports whether a is one of the supported kinds.
func (a Activation) Valid() bool {
	return a <= Identity
}

// String returns the canonical name.
func (a Activation) String() string {
	switch a {
	case Sigmoid:
		return "sigmoid"
	case Tanh:
		return "tanh"
	case Identity:
		return "identity"
	default:
		return fmt.Sprintf("Activation(%d)", uint8(a))
	}
}

// Apply evaluates the activation at x. Unknown kinds return NaN.
func (a Activation) Apply(x float64) float64 {
	switch a {
	case Sigmoid:
		return stableSigmoid(x)
	case Tanh:
		return math.Tanh(x)
	case Identity:
		return x
	default:
		return math.NaN()
	}
}

// DerivativeFromOutput returns f'(x) given s = f(x).
// Unknown kinds return NaN.
func (a Activation) DerivativeFromOutput(s float64) float64 {
	switch a {
	case Sigmoid:
		return s * (1 - s)
	case Tanh:
		return 1 - s*s
	case Identity:
		return 1
	default:
		return math.NaN()
	}
}

// stableSigmoid never exponentiates a positive argument, so large |x|
// cannot overflow.
func stableSigmoid(x float64) float64 {
	var s float64
	if x >= 0 {
		s = 1 / (1 + math.Exp(-x))
	} else {
		e := math.Exp(x)
		s = e / (1 + e)
	}
	return math.Min(math.Max(s, sigmoidLow), sigmoidHigh)
}

// Activate applies kind elementwise to m.
func Activate(m *Matrix, kind Activation) (*Matrix, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("activate: %v: %w", kind, ErrUnknownActivation)
	}
	return Map(m, kind.Apply), nil
}

// ActivationDerivative returns the derivative of kind evaluated from its
// forward output. For Identity this is a matrix of ones shaped like out.
//
// The result is only meaningful when out really is kind's forward output.
func ActivationDerivative(out *Matrix, kind Activation) (*Matrix, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("activation derivative: %v: %w", kind, ErrUnknownActivation)
	}
	return Map(out, kind.DerivativeFromOutput), nil
}
