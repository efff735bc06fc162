package matrix

import "errors"

// Every message carries the "matrix:" prefix. Call sites add context with
// fmt.Errorf("op: ...: %w", ErrX); callers match with errors.Is.
var (
	// ErrShapeMismatch indicates operands whose dimensions are incompatible
	// for the requested operation, or row data that is empty or ragged.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrUnknownActivation indicates an activation kind outside
	// {sigmoid, tanh, identity}.
	ErrUnknownActivation = errors.New("matrix: unknown activation")

	// ErrNonFiniteValue indicates a NaN or ±Inf where finite values are required.
	ErrNonFiniteValue = errors.New("matrix: non-finite value")
)
