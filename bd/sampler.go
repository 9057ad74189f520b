// Package bd - conditional samplers for the basis and mixture matrices.
//
// Both samplers implement one half of the alternating Gibbs scheme: every
// non-held column of W (row of H) is redrawn from its rectified-Gaussian
// full conditional, entry by entry, while all other components stay fixed.
// Columns are processed in index order so each draw conditions on the
// already-updated values of earlier columns within the same pass
// (standard Gibbs-within-Gibbs).
package bd

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
)

// degenerateTol is the threshold below which a Gram-matrix diagonal entry is
// treated as zero: the corresponding conditional has no finite precision, so
// the column/row keeps its current value for this pass.
const degenerateTol = 1e-304

// sampleBasis redraws every non-held column of w in place.
//
// For column k with Gram matrix C = H·Hᵀ and data projection D = V·Hᵀ, the
// full conditional of entry W[i,k] is the rectified Gaussian with
//
//	mean     μ = (D[i,k] − Σ_{j≠k} W[i,j]·C[j,k]) / C[k,k]
//	variance s = σ² / C[k,k]
//	rate     λ = Alpha[i,k]
//
// C and D depend only on h, so they are computed once per pass; the cross
// term reads the live w and therefore sees earlier columns' fresh draws.
//
// Degenerate case: C[k,k] ≈ 0 (row k of H is numerically zero) leaves
// column k untouched for this pass, as if it were held.
//
// Complexity: O(n·m·rank) for the products, O(n·rank²) for the draws.
func sampleBasis(v, w, h, alpha *mat.Dense, sigma2 float64, hold []bool, rng *rand.Rand) {
	n, rank := w.Dims()

	var c, d mat.Dense
	c.Mul(h, h.T())
	d.Mul(v, h.T())

	var (
		k, i, j   int
		ckk, s    float64
		cross, mu float64
	)
	for k = 0; k < rank; k++ {
		if hold != nil && hold[k] {
			continue
		}
		ckk = c.At(k, k)
		if ckk <= degenerateTol {
			continue
		}
		s = sigma2 / ckk

		for i = 0; i < n; i++ {
			cross = 0
			for j = 0; j < rank; j++ {
				if j != k {
					cross += w.At(i, j) * c.At(j, k)
				}
			}
			mu = (d.At(i, k) - cross) / ckk
			w.Set(i, k, randRectified(mu, s, alpha.At(i, k), rng))
		}
	}
}

// sampleMixture redraws every non-held row of h in place; it is the exact
// mirror of sampleBasis with the roles of W and H swapped.
//
// For row k with Gram matrix E = Wᵀ·W and projection F = Wᵀ·V, entry H[k,j]
// is drawn from the rectified Gaussian with
//
//	mean     μ = (F[k,j] − Σ_{l≠k} E[k,l]·H[l,j]) / E[k,k]
//	variance s = σ² / E[k,k]
//	rate     λ = Beta[k,j]
//
// Degenerate case: E[k,k] ≈ 0 (column k of W is numerically zero) leaves
// row k untouched for this pass.
//
// Complexity: O(n·m·rank) for the products, O(m·rank²) for the draws.
func sampleMixture(v, w, h, beta *mat.Dense, sigma2 float64, hold []bool, rng *rand.Rand) {
	rank, m := h.Dims()

	var e, f mat.Dense
	e.Mul(w.T(), w)
	f.Mul(w.T(), v)

	var (
		k, j, l   int
		ekk, s    float64
		cross, mu float64
	)
	for k = 0; k < rank; k++ {
		if hold != nil && hold[k] {
			continue
		}
		ekk = e.At(k, k)
		if ekk <= degenerateTol {
			continue
		}
		s = sigma2 / ekk

		for j = 0; j < m; j++ {
			cross = 0
			for l = 0; l < rank; l++ {
				if l != k {
					cross += e.At(k, l) * h.At(l, j)
				}
			}
			mu = (f.At(k, j) - cross) / ekk
			h.Set(k, j, randRectified(mu, s, beta.At(k, j), rng))
		}
	}
}

// residualSS returns the objective ‖v − w·h‖²_F, the sum of squared
// residual entries.
//
// Complexity: O(n·m·rank).
func residualSS(v, w, h *mat.Dense) float64 {
	var est, res mat.Dense
	est.Mul(w, h)
	res.Sub(v, &est)

	f := mat.Norm(&res, 2)

	return f * f
}
