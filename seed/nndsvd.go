package seed

import (
	"math"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
)

// NNDSVD seeds the factors from the target's truncated SVD
// (Boutsidis–Gallopoulos "basic" variant): the leading singular triplet
// maps directly onto (W[:,0], H[0,:]); every later triplet is split into
// its positive and negative parts and the pair with the larger combined
// mass wins. Entries that fall out of the winning part stay exactly zero,
// which is what gives NNDSVD-seeded factors their characteristic sparsity.
type NNDSVD struct{}

// Initialize computes the rank-truncated SVD of v and folds it into a
// non-negative (W, H) pair. Deterministic: the rng is unused.
//
// Contracts:
//   - 1 ≤ rank ≤ min(n, m) (the SVD provides no more triplets than that).
//
// Complexity: O(n·m·min(n,m)) for the thin SVD.
func (NNDSVD) Initialize(v *mat.Dense, rank int, _ *rand.Rand) (*mat.Dense, *mat.Dense, error) {
	if v == nil {
		return nil, nil, ErrNilMatrix
	}

	n, m := v.Dims()
	if rank < 1 || rank > min(n, m) {
		return nil, nil, ErrBadRank
	}

	var svd mat.SVD
	if ok := svd.Factorize(v, mat.SVDThin); !ok {
		return nil, nil, ErrSVDFailed
	}

	var u, rv mat.Dense
	svd.UTo(&u)
	svd.VTo(&rv)
	sv := svd.Values(nil)

	var (
		w = mat.NewDense(n, rank, nil)
		h = mat.NewDense(rank, m, nil)

		uk = make([]float64, n)
		vk = make([]float64, m)
	)

	// Leading triplet: u₀ and v₀ are sign-consistent, |·| makes the choice
	// canonical without changing the product.
	mat.Col(uk, 0, &u)
	mat.Col(vk, 0, &rv)
	root := math.Sqrt(sv[0])

	var i, j int
	for i = 0; i < n; i++ {
		w.Set(i, 0, root*math.Abs(uk[i]))
	}
	for j = 0; j < m; j++ {
		h.Set(0, j, root*math.Abs(vk[j]))
	}

	var k int
	for k = 1; k < rank; k++ {
		mat.Col(uk, k, &u)
		mat.Col(vk, k, &rv)

		upn, unn := splitNorms(uk)
		vpn, vnn := splitNorms(vk)

		// Pick the half-space pair carrying more of the triplet's mass.
		var (
			sigma    float64
			negative bool
		)
		if upn*vpn >= unn*vnn {
			sigma = upn * vpn
		} else {
			sigma = unn * vnn
			negative = true
		}
		if sigma == 0 {
			// Triplet fully cancels; leave column k and row k at zero.
			continue
		}

		var (
			scaleU = math.Sqrt(sv[k] * sigma)
			un, vn = upn, vpn
		)
		if negative {
			un, vn = unn, vnn
		}
		for i = 0; i < n; i++ {
			w.Set(i, k, scaleU*part(uk[i], negative)/un)
		}
		for j = 0; j < m; j++ {
			h.Set(k, j, scaleU*part(vk[j], negative)/vn)
		}
	}

	return w, h, nil
}

// splitNorms returns the Euclidean norms of x's positive and negative parts.
func splitNorms(x []float64) (pos, neg float64) {
	var t float64
	for _, t = range x {
		if t > 0 {
			pos += t * t
		} else {
			neg += t * t
		}
	}

	return math.Sqrt(pos), math.Sqrt(neg)
}

// part selects the positive part of t, or the flipped negative part.
func part(t float64, negative bool) float64 {
	if negative {
		t = -t
	}
	if t > 0 {
		return t
	}

	return 0
}
