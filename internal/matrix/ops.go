package matrix

import (
	"fmt"
	"math"

	"github.com/born-ml/scratchnet/internal/parallel"
)

var defaultParallel = parallel.DefaultConfig()

// Transpose returns aᵗ.
func Transpose(a *Matrix) *Matrix {
	out := New(a.cols, a.rows)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			out.data[j*a.rows+i] = a.data[i*a.cols+j]
		}
	}
	return out
}

// MatMul returns the dense product a·b using the default parallel config.
//
// Returns ErrShapeMismatch when a.Cols() != b.Rows().
func MatMul(a, b *Matrix) (*Matrix, error) {
	return MatMulWith(a, b, defaultParallel)
}

// MatMulWith is MatMul with an explicit row-splitting config.
// (M, K) @ (K, N) -> (M, N). Output rows are computed independently, so the
// result is identical for every cfg.
func MatMulWith(a, b *Matrix, cfg parallel.Config) (*Matrix, error) {
	if a.cols != b.rows {
		return nil, fmt.Errorf("matmul: %s @ %s: %w", a.shapeString(), b.shapeString(), ErrShapeMismatch)
	}
	m, k, n := a.rows, a.cols, b.cols
	out := New(m, n)
	parallel.Rows(m, cfg, func(lo, hi int) {
		// i-k-j order walks b and out row-contiguously.
		for i := lo; i < hi; i++ {
			dst := out.data[i*n : (i+1)*n]
			for kk := 0; kk < k; kk++ {
				aik := a.data[i*k+kk]
				src := b.data[kk*n : (kk+1)*n]
				for j, v := range src {
					dst[j] += aik * v
				}
			}
		}
	})
	return out, nil
}

// Add returns a + b elementwise.
func Add(a, b *Matrix) (*Matrix, error) {
	return zipWith("add", a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns a - b elementwise.
func Sub(a, b *Matrix) (*Matrix, error) {
	return zipWith("subtract", a, b, func(x, y float64) float64 { return x - y })
}

// Mul returns the elementwise (Hadamard) product a ⊙ b.
func Mul(a, b *Matrix) (*Matrix, error) {
	return zipWith("dotmultiply", a, b, func(x, y float64) float64 { return x * y })
}

func zipWith(op string, a, b *Matrix, f func(x, y float64) float64) (*Matrix, error) {
	if !a.SameShape(b) {
		return nil, fmt.Errorf("%s: %s vs %s: %w", op, a.shapeString(), b.shapeString(), ErrShapeMismatch)
	}
	out := New(a.rows, a.cols)
	for i, x := range a.data {
		out.data[i] = f(x, b.data[i])
	}
	return out, nil
}

// Map returns f applied to every element of a.
func Map(a *Matrix, f func(float64) float64) *Matrix {
	out := New(a.rows, a.cols)
	for i, x := range a.data {
		out.data[i] = f(x)
	}
	return out
}

// Scale returns a * s.
func Scale(a *Matrix, s float64) *Matrix {
	return Map(a, func(x float64) float64 { return x * s })
}

// AddRowwise broadcast-adds the 1 x n row vector to every row of the m x n
// matrix a (bias add).
func AddRowwise(a, row *Matrix) (*Matrix, error) {
	if row.rows != 1 || row.cols != a.cols {
		return nil, fmt.Errorf("addRowwise: %s vs %s: %w", a.shapeString(), row.shapeString(), ErrShapeMismatch)
	}
	out := New(a.rows, a.cols)
	for i := 0; i < a.rows; i++ {
		base := i * a.cols
		for j, b := range row.data {
			out.data[base+j] = a.data[base+j] + b
		}
	}
	return out, nil
}

// SumColumns reduces an m x n matrix to the 1 x n row of column sums.
func SumColumns(a *Matrix) *Matrix {
	out := New(1, a.cols)
	for i := 0; i < a.rows; i++ {
		base := i * a.cols
		for j := range out.data {
			out.data[j] += a.data[base+j]
		}
	}
	return out
}

// Abs returns |a| elementwise.
func Abs(a *Matrix) *Matrix {
	return Map(a, math.Abs)
}

// Sum returns the sum of all elements.
func Sum(a *Matrix) float64 {
	var s float64
	for _, v := range a.data {
		s += v
	}
	return s
}

// Mean returns the arithmetic mean over all elements.
func Mean(a *Matrix) float64 {
	return Sum(a) / float64(len(a.data))
}
