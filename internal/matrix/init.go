package matrix

import (
	"math"
	"math/rand"
)

// Uniform fills a rows x cols matrix with independent draws from [lo, hi).
//
// With lo == hi every element equals lo, which is how zero biases are made.
func Uniform(rng *rand.Rand, rows, cols int, lo, hi float64) *Matrix {
	m := New(rows, cols)
	for i := range m.data {
		m.data[i] = rng.Float64()*(hi-lo) + lo
	}
	return m
}

// GlorotLimit returns sqrt(6 / (fanIn + fanOut)).
func GlorotLimit(fanIn, fanOut int) float64 {
	return math.Sqrt(6.0 / float64(fanIn+fanOut))
}

// Glorot (Xavier) initialization for a fanIn x fanOut weight matrix.
//
// Draws from U(-limit, limit) with limit = sqrt(6/(fanIn+fanOut)), which
// keeps activation and gradient variance roughly stable across the layer
// regardless of its width.
func Glorot(rng *rand.Rand, fanIn, fanOut int) *Matrix {
	limit := GlorotLimit(fanIn, fanOut)
	return Uniform(rng, fanIn, fanOut, -limit, limit)
}
