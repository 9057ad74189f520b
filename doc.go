// Package bnmf is a Bayesian non-negative matrix factorization toolkit:
// it approximates a non-negative matrix V as a product W·H of non-negative
// factors by sampling from the posterior instead of optimizing a loss.
//
// 🚀 What is bnmf?
//
//	A deterministic, dependency-light library built on gonum that brings together:
//		• Gibbs sampling: rectified-Gaussian draws for W and H, inverse-Gamma for σ²
//		• Exponential sparsity priors on both factors, configurable per entry
//		• Burn-in ("skip") and thinning ("stride") schedules
//		• Multi-run orchestration with per-run snapshot tracking
//		• Seeding strategies: Random, Fixed, NNDSVD
//
// ✨ Why choose bnmf?
//
//   - Reproducible – one seed, bit-identical factorizations, even across parallel runs
//   - Rock-solid guarantees – entrywise non-negativity preserved after every sweep
//   - No global state – immutable Options value, sentinel errors, no logging
//   - Extensible – pluggable convergence Monitor and Seeder interfaces
//
// Everything is organized under two subpackages:
//
//	bd/   — the Bayesian decomposition Gibbs sampler (engine, samplers, tracker)
//	seed/ — initial (W,H) strategies: Random, Fixed, NNDSVD
//
// Quick sketch:
//
//	    V (n×m)  ≈  W (n×rank) · H (rank×m),   all entries ≥ 0
//
//	each sweep redraws W column-by-column, H row-by-row, then σ².
//
// Dive into bd/doc.go for the statistical model and the sampling schedule,
// and seed/doc.go for initialization strategies.
//
//	go get github.com/katalvlaran/bnmf
package bnmf
