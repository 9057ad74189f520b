// Package bd - configuration for the Bayesian Decomposition sampler.
//
// This file defines:
//   - documented defaults (constants, single source of truth),
//   - the immutable Options value consumed by Factorize,
//   - DefaultOptions, the canonical starting point for callers.
//
// Design goals:
//   - Deterministic behavior: no global state, no time-based randomness.
//   - Safe by construction: every field is validated once, before any sweep.
//   - Reusability: Options is a plain value; copy it, tweak it, pass it on.
package bd

import "gonum.org/v1/gonum/mat"

// DEFAULTS - these constants MUST reflect the intended defaults in DefaultOptions.
const (
	// DefaultGibbsSamples is the target number of retained Gibbs samples (the
	// classical "m" parameter). Recorded and exposed through Result; the
	// stopping decision itself belongs to the Monitor.
	DefaultGibbsSamples = 30

	// DefaultSigma is the initial noise variance σ².
	DefaultSigma = 1.0

	// DefaultSkip is the number of burn-in passes performed on the first
	// sweep and discarded before samples are considered representative.
	DefaultSkip = 100

	// DefaultStride is the thinning interval: passes per retained sweep
	// after burn-in. Larger strides reduce autocorrelation between sweeps.
	DefaultStride = 1

	// DefaultChains is the number of independent Markov chains per run.
	// Recorded and exposed for external diagnostics (e.g. Gelman–Rubin);
	// no cross-chain combination happens inside this package.
	DefaultChains = 1

	// DefaultNRun is the number of independent top-level runs.
	DefaultNRun = 1
)

// Options configures Factorize. Zero values are NOT all meaningful
// (Sigma and Stride must be positive); start from DefaultOptions.
//
// Prior hyperparameters:
//   - Alpha: n×rank exponential rates for W; nil ⇒ flat non-negative prior.
//   - Beta:  rank×m exponential rates for H; nil ⇒ flat non-negative prior.
//   - Theta, K: scale and shape of the inverse-Gamma prior on σ².
//
// Sampling schedule:
//   - Sigma: initial σ² (> 0).
//   - Skip: burn-in passes on the first sweep (≥ 0).
//   - Stride: passes per sweep after burn-in (≥ 1).
//   - Chains: independent chains per run (≥ 1, recorded only).
//   - TestConv: recompute the objective every TestConv-th sweep; 0 ⇒ every
//     sweep. On skipped sweeps the objective holds its last value.
//
// Masking:
//   - HoldW[k] / HoldH[k]: keep basis column k / mixture row k at its seeded
//     value. Length must equal Rank when non-nil.
//   - HoldSigma: keep σ² at Sigma for the whole factorization.
//
// Stopping:
//   - MaxIters: hard bound on sweeps; 0 ⇒ unbounded.
//   - MinResiduals: minimal required objective change; 0 ⇒ disabled.
//   - Monitor: custom stopping policy; nil ⇒ MonotoneMonitor{MaxIters, MinResiduals}.
//
// Orchestration:
//   - NRun: independent runs (≥ 1); the last run's state is surfaced.
//   - Track: snapshot each run's final (W,H) when NRun > 1.
//   - Workers: run up to Workers runs in parallel; ≤ 1 ⇒ sequential.
//     Results are bit-identical either way.
//   - Seed: root of all randomness; 0 ⇒ fixed default seed.
type Options struct {
	Rank int

	GibbsSamples int

	Alpha *mat.Dense
	Beta  *mat.Dense
	Theta float64
	K     float64

	Sigma    float64
	Skip     int
	Stride   int
	Chains   int
	TestConv int

	HoldW     []bool
	HoldH     []bool
	HoldSigma bool

	MaxIters     int
	MinResiduals float64
	Monitor      Monitor

	NRun    int
	Track   bool
	Workers int
	Seed    uint64
}

// DefaultOptions returns the canonical configuration: flat priors, σ²=1,
// 100 burn-in passes, stride 1, a single chain and a single run.
// Rank is deliberately left at 0 and must be set by the caller.
func DefaultOptions() Options {
	return Options{
		GibbsSamples: DefaultGibbsSamples,
		Sigma:        DefaultSigma,
		Skip:         DefaultSkip,
		Stride:       DefaultStride,
		Chains:       DefaultChains,
		NRun:         DefaultNRun,
	}
}

// monitor resolves the stopping policy: the caller-supplied Monitor wins,
// otherwise the classical monotone-decrease heuristic is used.
func (o Options) monitor() Monitor {
	if o.Monitor != nil {
		return o.Monitor
	}

	return MonotoneMonitor{MaxIters: o.MaxIters, MinResiduals: o.MinResiduals}
}
