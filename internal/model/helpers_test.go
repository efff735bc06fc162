package model

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/born-ml/scratchnet/internal/matrix"
)

// quietConfig is the default config with output silenced and a fixed seed.
func quietConfig(seed int64) TrainingConfig {
	cfg := DefaultTrainingConfig()
	cfg.Output = io.Discard
	cfg.Seed = seed
	return cfg
}

func xorData() (x, t [][]float64) {
	x = [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	t = [][]float64{{0}, {1}, {1}, {0}}
	return x, t
}

func mustNetwork(t *testing.T, in, hidden, out int, cfg TrainingConfig) *Network {
	t.Helper()
	n, err := NewNetwork(in, hidden, out, cfg)
	require.NoError(t, err)
	return n
}

func requireSameParams(t *testing.T, want, got Parameters) {
	t.Helper()
	require.True(t, want.W0.ApproxEqual(got.W0, 0), "W0 changed")
	require.True(t, want.B0.ApproxEqual(got.B0, 0), "b0 changed")
	require.True(t, want.W1.ApproxEqual(got.W1, 0), "W1 changed")
	require.True(t, want.B1.ApproxEqual(got.B1, 0), "b1 changed")
}

func mse(t *testing.T, pred, target [][]float64) float64 {
	t.Helper()
	p, err := matrix.FromRows(pred)
	require.NoError(t, err)
	tm, err := matrix.FromRows(target)
	require.NoError(t, err)
	diff, err := matrix.Sub(tm, p)
	require.NoError(t, err)
	sq, err := matrix.Mul(diff, diff)
	require.NoError(t, err)
	return matrix.Mean(sq)
}
