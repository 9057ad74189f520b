package seed

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
)

// Fixed replays a caller-supplied starting point. Every run receives deep
// copies of W0 and H0, so the engine's in-place mutation can never leak
// back into the originals or across runs.
type Fixed struct {
	// W0 is the n×rank starting basis, H0 the rank×m starting mixture.
	W0 *mat.Dense
	H0 *mat.Dense
}

// Initialize returns deep copies of (W0, H0) after checking their shapes
// against the target and the requested rank. The rng is unused; a fixed
// start is deterministic by definition.
//
// Complexity: O((n+m)·rank) for the copies.
func (f Fixed) Initialize(v *mat.Dense, rank int, _ *rand.Rand) (*mat.Dense, *mat.Dense, error) {
	if v == nil {
		return nil, nil, ErrNilMatrix
	}
	if rank < 1 {
		return nil, nil, ErrBadRank
	}
	if f.W0 == nil || f.H0 == nil {
		return nil, nil, ErrShapeMismatch
	}

	n, m := v.Dims()
	wr, wc := f.W0.Dims()
	hr, hc := f.H0.Dims()
	if wr != n || wc != rank || hr != rank || hc != m {
		return nil, nil, ErrShapeMismatch
	}

	return mat.DenseCopyOf(f.W0), mat.DenseCopyOf(f.H0), nil
}
