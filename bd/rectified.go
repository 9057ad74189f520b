package bd

import (
	"math"

	"golang.org/x/exp/rand"
)

// rectifiedTailCut is the standardized threshold beyond which the truncated
// normal is indistinguishable from its exponential tail. With
// a = (λs − μ)/√(2s) above this cut, erfc(a) underflows and the quantile
// transform loses all precision, so the tail approximation takes over.
const rectifiedTailCut = 26.0

// randRectified draws one sample from the rectified Gaussian
//
//	p(x) ∝ exp(−(x−μ)²/(2s) − λx),  x ≥ 0,
//
// the conditional posterior of a single W or H entry under a Gaussian
// likelihood (untruncated mean μ, variance s) and an exponential prior
// (rate λ). λ shifts the effective mean to μ − λs; truncation to the
// non-negative half-line is exact, via the inverse CDF.
//
// Method (closed-form quantile transform):
//
//	a = (λs − μ)/√(2s)                      standardized negated mean
//	R = erfc(|a|)                            mass of the kept half-line
//	x = erfcinv(y·R − [a<0]·(2y + R − 2))·√(2s) + μ − λs,  y ~ U(0,1)
//
// When a > rectifiedTailCut the kept mass sits entirely in the Gaussian
// tail and the density is effectively exponential with rate (λs − μ)/s;
// the draw falls back to inverse-CDF sampling of that exponential.
//
// Contracts:
//   - s > 0 and λ ≥ 0 (guaranteed by the callers);
//   - the result is finite and ≥ 0: NaN/Inf from extreme quantiles and
//     negative round-off are clamped to 0, mirroring the reference sampler.
//
// Complexity: O(1), one uniform variate per call.
func randRectified(mu, s, lambda float64, rng *rand.Rand) float64 {
	var (
		a = (lambda*s - mu) / math.Sqrt(2*s)
		y = rng.Float64()
		x float64
	)

	if a > rectifiedTailCut {
		x = -math.Log(y) / ((lambda*s - mu) / s)
	} else {
		arg := y * math.Erfc(math.Abs(a))
		if a < 0 {
			arg -= 2*y + math.Erfc(math.Abs(a)) - 2
		}
		x = math.Erfcinv(arg)*math.Sqrt(2*s) + mu - lambda*s
	}

	if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
		return 0
	}

	return x
}
