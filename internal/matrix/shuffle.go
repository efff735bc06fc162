package matrix

import (
	"fmt"
	"math/rand"
)

// ShufflePaired applies one Fisher–Yates permutation to x and t in place,
// so row i of x stays paired with row i of t.
//
// Only the row slice headers move; row contents are untouched. The caller
// must hold exclusive access to both slices for the duration of the call.
func ShufflePaired(rng *rand.Rand, x, t [][]float64) error {
	if len(x) != len(t) {
		return fmt.Errorf("shuffle: %d rows vs %d rows: %w", len(x), len(t), ErrShapeMismatch)
	}
	for i := len(x) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		x[i], x[j] = x[j], x[i]
		t[i], t[j] = t[j], t[i]
	}
	return nil
}
