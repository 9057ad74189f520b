package bd

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// minNoiseScale keeps the inverse-Gamma scale strictly positive when the
// reconstruction is exact and θ is zero; the draw stays proper.
const minNoiseScale = 1e-304

// sampleNoise draws a new σ² from its inverse-Gamma full conditional.
//
// Conjugacy of the Gaussian likelihood with the inverse-Gamma prior
// (shape k, scale θ) gives the posterior
//
//	σ² | V,W,H  ~  InvGamma( n·m/2 + k,  θ + ‖V − W·H‖²_F / 2 ).
//
// Contracts:
//   - θ ≥ 0 and k ≥ 0 (validated at configuration time);
//   - the result is strictly positive for every valid input.
//
// Complexity: O(n·m·rank), dominated by the residual.
func sampleNoise(v, w, h *mat.Dense, theta, k float64, rng *rand.Rand) float64 {
	n, m := v.Dims()

	var (
		shape = float64(n*m)/2 + k
		scale = theta + residualSS(v, w, h)/2
	)
	if scale <= 0 {
		scale = minNoiseScale
	}

	return distuv.InverseGamma{Alpha: shape, Beta: scale, Src: rng}.Rand()
}
