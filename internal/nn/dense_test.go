package nn

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/scratchnet/internal/matrix"
	"github.com/born-ml/scratchnet/internal/parallel"
)

func rows(t *testing.T, r [][]float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(r)
	require.NoError(t, err)
	return m
}

func newDense(t *testing.T, in, out int, act matrix.Activation) *Dense {
	t.Helper()
	d, err := NewDense(rand.New(rand.NewSource(1)), 0, in, out, act, parallel.Sequential())
	require.NoError(t, err)
	return d
}

func TestNewDense(t *testing.T) {
	d := newDense(t, 3, 5, matrix.Tanh)

	assert.Equal(t, 3, d.InFeatures())
	assert.Equal(t, 5, d.OutFeatures())
	assert.Equal(t, matrix.Tanh, d.Activation())
	assert.Equal(t, "W0", d.Weight().Name())
	assert.Equal(t, "b0", d.Bias().Name())

	r, c := d.Weight().Value().Shape()
	assert.Equal(t, []int{3, 5}, []int{r, c})
	assert.True(t, d.Bias().Value().ApproxEqual(matrix.New(1, 5), 0), "biases start at zero")

	limit := matrix.GlorotLimit(3, 5)
	assert.LessOrEqual(t, matrix.L2Norm(d.Weight().Value()), limit*4)
	assert.Len(t, d.Parameters(), 2)
}

func TestNewDense_UnknownActivation(t *testing.T) {
	_, err := NewDense(rand.New(rand.NewSource(1)), 1, 2, 2, matrix.Activation(5), parallel.Sequential())
	assert.ErrorIs(t, err, matrix.ErrUnknownActivation)
}

func TestDenseForward(t *testing.T) {
	d := newDense(t, 2, 1, matrix.Identity)
	require.NoError(t, d.Weight().Value().CopyFrom(rows(t, [][]float64{{2}, {-1}})))
	require.NoError(t, d.Bias().Value().CopyFrom(rows(t, [][]float64{{0.5}})))

	cache, err := d.Forward(rows(t, [][]float64{{1, 1}, {3, 2}}))
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{1.5}, {4.5}}, cache.Z.ToRows())
	assert.Equal(t, [][]float64{{1.5}, {4.5}}, cache.A.ToRows())
}

func TestDenseForward_ShapeMismatch(t *testing.T) {
	d := newDense(t, 2, 3, matrix.Sigmoid)

	_, err := d.Forward(matrix.New(4, 3))
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

// lossAt returns 0.5 * sum((A - T)²) for the layer's current parameters,
// whose gradient w.r.t. A is exactly the summed form A - T.
func lossAt(t *testing.T, d *Dense, x, target *matrix.Matrix) float64 {
	cache, err := d.Forward(x)
	require.NoError(t, err)
	diff, err := matrix.Sub(cache.A, target)
	require.NoError(t, err)
	sq, err := matrix.Mul(diff, diff)
	require.NoError(t, err)
	return 0.5 * matrix.Sum(sq)
}

// TestDenseBackward_NumericGradient compares analytic parameter and input
// gradients against central differences.
func TestDenseBackward_NumericGradient(t *testing.T) {
	for _, act := range []matrix.Activation{matrix.Sigmoid, matrix.Tanh, matrix.Identity} {
		t.Run(act.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(8))
			d := newDense(t, 3, 2, act)
			require.NoError(t, d.Bias().Value().CopyFrom(matrix.Uniform(rng, 1, 2, -0.5, 0.5)))
			x := matrix.Uniform(rng, 4, 3, -1, 1)
			target := matrix.Uniform(rng, 4, 2, -1, 1)

			cache, err := d.Forward(x)
			require.NoError(t, err)
			dA, err := matrix.Sub(cache.A, target)
			require.NoError(t, err)
			dX, err := d.Backward(cache, dA, true)
			require.NoError(t, err)

			const h = 1e-6
			for _, p := range d.Parameters() {
				v := p.Value()
				for i := 0; i < v.Rows(); i++ {
					for j := 0; j < v.Cols(); j++ {
						orig := v.At(i, j)
						v.Set(i, j, orig+h)
						up := lossAt(t, d, x, target)
						v.Set(i, j, orig-h)
						down := lossAt(t, d, x, target)
						v.Set(i, j, orig)

						numeric := (up - down) / (2 * h)
						assert.InDelta(t, numeric, p.Grad().At(i, j), 1e-6, "%s[%d,%d]", p.Name(), i, j)
					}
				}
			}

			for i := 0; i < x.Rows(); i++ {
				for j := 0; j < x.Cols(); j++ {
					orig := x.At(i, j)
					x.Set(i, j, orig+h)
					up := lossAt(t, d, x, target)
					x.Set(i, j, orig-h)
					down := lossAt(t, d, x, target)
					x.Set(i, j, orig)

					assert.InDelta(t, (up-down)/(2*h), dX.At(i, j), 1e-6, "dX[%d,%d]", i, j)
				}
			}
		})
	}
}

func TestDenseBackward_NoInputGrad(t *testing.T) {
	d := newDense(t, 2, 2, matrix.Tanh)
	cache, err := d.Forward(matrix.Full(3, 2, 0.3))
	require.NoError(t, err)

	dX, err := d.Backward(cache, matrix.Full(3, 2, 1), false)
	require.NoError(t, err)
	assert.Nil(t, dX)
	assert.NotNil(t, d.Weight().Grad())
	assert.Equal(t, 1, d.Bias().Grad().Rows())
}
