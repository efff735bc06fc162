package matrix

import (
	"fmt"
	"math"
)

// L2Norm returns the Euclidean norm over all elements of a.
//
// Squares are accumulated relative to the largest magnitude seen so far
// (scale * sqrt(ssq)), so the result only overflows when the true norm
// exceeds math.MaxFloat64.
func L2Norm(a *Matrix) float64 {
	scale, ssq := 0.0, 1.0
	for _, v := range a.data {
		if v == 0 {
			continue
		}
		abs := math.Abs(v)
		if scale < abs {
			r := scale / abs
			ssq = 1 + ssq*r*r
			scale = abs
		} else {
			r := abs / scale
			ssq += r * r
		}
	}
	return scale * math.Sqrt(ssq)
}

// ClipByL2 rescales a so that its L2 norm does not exceed maxNorm,
// preserving direction.
//
// An unchanged copy is returned when the norm is already <= maxNorm, and
// also when the norm is zero or non-finite: a NaN or Inf tensor passes
// through unclipped and must be caught by a later finiteness check.
// A negative maxNorm is treated as zero.
func ClipByL2(a *Matrix, maxNorm float64) *Matrix {
	n := L2Norm(a)
	if math.IsNaN(n) || math.IsInf(n, 0) || n == 0 {
		return a.Clone()
	}
	maxNorm = math.Max(maxNorm, 0)
	if n <= maxNorm {
		return a.Clone()
	}
	return Scale(a, maxNorm/n)
}

// IsFinite reports whether every element of a is neither NaN nor ±Inf.
func IsFinite(a *Matrix) bool {
	for _, v := range a.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// AssertFinite returns ErrNonFiniteValue, naming the tensor and the first
// offending element, if a contains NaN or ±Inf.
func AssertFinite(a *Matrix, name string) error {
	for i, v := range a.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s[%d,%d] = %v: %w", name, i/a.cols, i%a.cols, v, ErrNonFiniteValue)
		}
	}
	return nil
}
