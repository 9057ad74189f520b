package seed

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Random seeds both factors with i.i.d. uniform entries on [0, max(V)),
// falling back to [0, 1) when the target is all-zero. Draws come from the
// run's private stream, so every run starts from an independent point while
// the whole factorization stays reproducible.
type Random struct{}

// Initialize returns a fresh uniform (W, H) pair for an n×m target.
//
// Complexity: O((n+m)·rank).
func (Random) Initialize(v *mat.Dense, rank int, rng *rand.Rand) (*mat.Dense, *mat.Dense, error) {
	if v == nil {
		return nil, nil, ErrNilMatrix
	}
	if rank < 1 {
		return nil, nil, ErrBadRank
	}

	n, m := v.Dims()

	hi := mat.Max(v)
	if hi <= 0 {
		hi = 1
	}
	u := distuv.Uniform{Min: 0, Max: hi, Src: rng}

	var (
		w = mat.NewDense(n, rank, nil)
		h = mat.NewDense(rank, m, nil)

		i, j, k int
	)
	for i = 0; i < n; i++ {
		for k = 0; k < rank; k++ {
			w.Set(i, k, u.Rand())
		}
	}
	for k = 0; k < rank; k++ {
		for j = 0; j < m; j++ {
			h.Set(k, j, u.Rand())
		}
	}

	return w, h, nil
}
