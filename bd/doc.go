// Package bd implements Bayesian Decomposition: a Gibbs sampler for
// non-negative matrix factorization.
//
// 🚀 What is Bayesian Decomposition?
//
//	Classic NMF minimizes ‖V − W·H‖²; Bayesian Decomposition instead treats
//	W and H as random and draws them from their posterior. The model is:
//	  • likelihood: V = W·H + ε, with ε i.i.d. Gaussian of variance σ²
//	  • priors:     exponential on every entry of W and H (rates α, β),
//	                which enforces non-negativity and encourages sparsity
//	  • noise:      inverse-Gamma prior on σ² (shape k, scale θ)
//
//	The joint posterior has no closed form, so the sampler iterates over the
//	full conditionals, which do:
//	  1. each column of W — rectified (non-negative) Gaussian
//	  2. each row of H    — rectified Gaussian, symmetric to step 1
//	  3. σ²               — inverse-Gamma
//	The sequence of states converges to samples from the joint posterior.
//
// Algorithm outline (one call to Factorize):
//
//	for run = 1..NRun:
//	  (W,H) ← Seeder.Initialize(V, rank)
//	  σ²    ← Sigma
//	  repeat while the Monitor allows:
//	    perform Skip inner passes on the first sweep, Stride afterwards;
//	    each pass redraws W (column order), then H (row order), then σ²
//	    recompute the objective ‖V − W·H‖²_F (every TestConv-th sweep)
//	  optionally snapshot (W,H) into the run Tracker
//	final run's (W, H, σ², iterations, objective) are returned
//
// Masking: HoldW / HoldH mark basis columns / mixture rows that are kept at
// their seeded values; HoldSigma freezes σ² at its initial value.
//
// Stopping: the default Monitor stops on MaxIters, on an improvement smaller
// than MinResiduals, or the first time the objective fails to decrease.
// The objective of a sampler is stochastic, so a non-decrease is an expected
// event rather than an anomaly; treat the stop as a heuristic and inspect
// Result.Trajectory or the Tracker snapshots for real MCMC diagnostics.
//
// Determinism:
//
//	All randomness flows from Options.Seed through per-run derived streams
//	(seed 0 selects a fixed default). Identical inputs and seed produce
//	bit-identical results, sequentially or with Workers > 1.
//
// Errors are sentinels (ErrShapeMismatch, ErrInvalidHyperparameter,
// ErrNumericInstability, …); the package never panics on user input and
// never logs.
//
// Reference: Schmidt, Winther, Hansen (2009). Bayesian Non-negative Matrix
// Factorization. Proceedings of ICA 2009, 540–547.
package bd
