// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the dense matrix algebra of the scratchnet engine.
//
// All operations are pure functions returning new matrices. Errors wrap
// ErrShapeMismatch, ErrUnknownActivation or ErrNonFiniteValue.
//
// Example:
//
//	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	b := matrix.Eye(2)
//	c, err := matrix.MatMul(a, b)
package matrix

import (
	"math/rand"

	"github.com/born-ml/scratchnet/internal/matrix"
	"github.com/born-ml/scratchnet/internal/parallel"
)

// Matrix is a dense rows x cols float64 matrix with immutable shape.
type Matrix = matrix.Matrix

// Activation is the closed set of supported activations.
type Activation = matrix.Activation

// ParallelConfig controls row-parallel matrix multiplication.
type ParallelConfig = parallel.Config

// Activations.
const (
	Sigmoid  = matrix.Sigmoid
	Tanh     = matrix.Tanh
	Identity = matrix.Identity
)

// Errors.
var (
	ErrShapeMismatch     = matrix.ErrShapeMismatch
	ErrUnknownActivation = matrix.ErrUnknownActivation
	ErrNonFiniteValue    = matrix.ErrNonFiniteValue
)

// Construction

// New creates a zero-filled rows x cols matrix.
func New(rows, cols int) *Matrix { return matrix.New(rows, cols) }

// Full creates a rows x cols matrix filled with v.
func Full(rows, cols int, v float64) *Matrix { return matrix.Full(rows, cols, v) }

// Eye creates the n x n identity matrix.
func Eye(n int) *Matrix { return matrix.Eye(n) }

// FromRows copies rectangular row data into a new Matrix.
func FromRows(rows [][]float64) (*Matrix, error) { return matrix.FromRows(rows) }

// Uniform draws every element independently from [lo, hi).
func Uniform(rng *rand.Rand, rows, cols int, lo, hi float64) *Matrix {
	return matrix.Uniform(rng, rows, cols, lo, hi)
}

// Glorot draws a fanIn x fanOut matrix from U(-limit, limit),
// limit = sqrt(6/(fanIn+fanOut)).
func Glorot(rng *rand.Rand, fanIn, fanOut int) *Matrix {
	return matrix.Glorot(rng, fanIn, fanOut)
}

// Algebra

// Transpose returns aᵗ.
func Transpose(a *Matrix) *Matrix { return matrix.Transpose(a) }

// MatMul returns the dense product a·b.
func MatMul(a, b *Matrix) (*Matrix, error) { return matrix.MatMul(a, b) }

// Add returns a + b.
func Add(a, b *Matrix) (*Matrix, error) { return matrix.Add(a, b) }

// Sub returns a - b.
func Sub(a, b *Matrix) (*Matrix, error) { return matrix.Sub(a, b) }

// Mul returns the elementwise product a ⊙ b.
func Mul(a, b *Matrix) (*Matrix, error) { return matrix.Mul(a, b) }

// Scale returns a * s.
func Scale(a *Matrix, s float64) *Matrix { return matrix.Scale(a, s) }

// AddRowwise broadcast-adds a 1 x n row to every row of a.
func AddRowwise(a, row *Matrix) (*Matrix, error) { return matrix.AddRowwise(a, row) }

// SumColumns returns the 1 x n row of column sums.
func SumColumns(a *Matrix) *Matrix { return matrix.SumColumns(a) }

// Abs returns |a| elementwise.
func Abs(a *Matrix) *Matrix { return matrix.Abs(a) }

// Mean returns the mean over all elements.
func Mean(a *Matrix) float64 { return matrix.Mean(a) }

// Activations

// ParseActivation resolves "sigmoid"/"sig", "tanh", "identity"/"lin".
func ParseActivation(name string) (Activation, error) { return matrix.ParseActivation(name) }

// Activate applies kind elementwise.
func Activate(m *Matrix, kind Activation) (*Matrix, error) { return matrix.Activate(m, kind) }

// ActivationDerivative returns kind's derivative computed from its forward output.
func ActivationDerivative(out *Matrix, kind Activation) (*Matrix, error) {
	return matrix.ActivationDerivative(out, kind)
}

// Norms and checks

// L2Norm returns the Euclidean norm over all elements.
func L2Norm(a *Matrix) float64 { return matrix.L2Norm(a) }

// ClipByL2 rescales a so its L2 norm does not exceed maxNorm.
func ClipByL2(a *Matrix, maxNorm float64) *Matrix { return matrix.ClipByL2(a, maxNorm) }

// AssertFinite returns ErrNonFiniteValue if a contains NaN or ±Inf.
func AssertFinite(a *Matrix, name string) error { return matrix.AssertFinite(a, name) }

// ShufflePaired permutes x and t in place with the same permutation.
func ShufflePaired(rng *rand.Rand, x, t [][]float64) error { return matrix.ShufflePaired(rng, x, t) }
