// Package matrix implements the dense matrix algebra used by the training
// engine: construction and initialization, elementwise and broadcast
// arithmetic, matrix multiplication, activations and their derivatives,
// norms and clipping, finiteness checks, and paired dataset shuffling.
//
// # Overview
//
// A Matrix stores rows*cols float64 values in row-major order. Its shape is
// fixed at construction; values may change through At/Set. Every operation
// in this package is a pure function of its inputs and returns a freshly
// allocated result, so operands are never aliased by results.
//
// # Errors
//
// Operations on incompatible operands return an error wrapping one of the
// package sentinels (ErrShapeMismatch, ErrUnknownActivation,
// ErrNonFiniteValue). Match them with errors.Is:
//
//	c, err := matrix.MatMul(a, b)
//	if errors.Is(err, matrix.ErrShapeMismatch) {
//	    // a.Cols() != b.Rows()
//	}
//
// # Concurrency
//
// Functions hold no package state and are safe for concurrent use on
// distinct or read-only operands. MatMul splits output rows across
// goroutines (see internal/parallel); the result does not depend on the
// split. ShufflePaired mutates its arguments and requires exclusive access.
package matrix
