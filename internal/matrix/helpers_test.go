package matrix

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

const tol = 1e-12

func mustFromRows(t *testing.T, rows [][]float64) *Matrix {
	t.Helper()
	m, err := FromRows(rows)
	require.NoError(t, err)
	return m
}

func randomMatrix(rng *rand.Rand, rows, cols int) *Matrix {
	return Uniform(rng, rows, cols, -5, 5)
}
