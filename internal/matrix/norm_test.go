package matrix

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestL2Norm(t *testing.T) {
	m := mustFromRows(t, [][]float64{{3, 0}, {0, -4}})
	assert.InDelta(t, 5.0, L2Norm(m), tol)
}

func TestL2Norm_LargeAndSmallMagnitudes(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"huge", [][]float64{{1e200, 1e200}}, math.Sqrt2 * 1e200},
		{"huge mixed", [][]float64{{-3e300}, {4e300}}, 5e300},
		{"tiny", [][]float64{{3e-200, 4e-200}}, 5e-200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := L2Norm(mustFromRows(t, tt.rows))
			assert.False(t, math.IsInf(got, 0))
			assert.InEpsilon(t, tt.want, got, 1e-14)
		})
	}

	assert.Equal(t, 0.0, L2Norm(New(2, 2)))
	assert.True(t, math.IsInf(L2Norm(mustFromRows(t, [][]float64{{math.Inf(-1), 1}})), 1))
	assert.True(t, math.IsNaN(L2Norm(mustFromRows(t, [][]float64{{1, math.NaN()}}))))
}

func TestClipByL2_HugeFiniteGradient(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1e200, 1e200}})

	got := ClipByL2(m, 1)
	require.True(t, IsFinite(got))
	assert.InDelta(t, 1.0, L2Norm(got), 1e-12)
	assert.InDelta(t, math.Sqrt2/2, got.At(0, 0), 1e-12)
	assert.InDelta(t, math.Sqrt2/2, got.At(0, 1), 1e-12)
}

func TestClipByL2(t *testing.T) {
	m := mustFromRows(t, [][]float64{{3, 4}})

	t.Run("above max rescales to max", func(t *testing.T) {
		got := ClipByL2(m, 1)
		assert.InDelta(t, 1.0, L2Norm(got), 1e-12)
		assert.InDelta(t, 0.6, got.At(0, 0), 1e-12)
		assert.InDelta(t, 0.8, got.At(0, 1), 1e-12)
	})

	t.Run("within max unchanged copy", func(t *testing.T) {
		got := ClipByL2(m, 5)
		assert.True(t, got.ApproxEqual(m, 0))
		got.Set(0, 0, 0)
		assert.Equal(t, 3.0, m.At(0, 0))
	})

	t.Run("zero norm unchanged", func(t *testing.T) {
		got := ClipByL2(New(2, 2), 1)
		assert.True(t, got.ApproxEqual(New(2, 2), 0))
	})

	t.Run("non-finite passes through", func(t *testing.T) {
		bad := mustFromRows(t, [][]float64{{math.Inf(1), 1}})
		got := ClipByL2(bad, 1)
		assert.True(t, math.IsInf(got.At(0, 0), 1))
		assert.Equal(t, 1.0, got.At(0, 1))
	})

	t.Run("negative max acts as zero", func(t *testing.T) {
		got := ClipByL2(m, -3)
		assert.InDelta(t, 0.0, L2Norm(got), 0)
	})
}

func TestClipByL2_NeverExceedsMax(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for i := 0; i < 200; i++ {
		m := Uniform(rng, 1+rng.Intn(6), 1+rng.Intn(6), -50, 50)
		maxNorm := rng.Float64() * 10

		got := ClipByL2(m, maxNorm)
		assert.LessOrEqual(t, L2Norm(got), maxNorm*(1+1e-12))
		if L2Norm(m) <= maxNorm {
			assert.True(t, got.ApproxEqual(m, 0))
		}
	}
}

func TestAssertFinite(t *testing.T) {
	require.NoError(t, AssertFinite(Full(2, 2, 1), "W0"))
	assert.True(t, IsFinite(Full(2, 2, 1)))

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		m := New(2, 3)
		m.Set(1, 2, v)

		assert.False(t, IsFinite(m))
		err := AssertFinite(m, "b1")
		require.ErrorIs(t, err, ErrNonFiniteValue)
		assert.Contains(t, err.Error(), "b1[1,2]")
	}
}
