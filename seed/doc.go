// Package seed provides initial (W, H) pairs for Bayesian NMF runs.
//
// 🚀 What is a seeding strategy?
//
//	Every factorization run starts from some non-negative (W, H) guess.
//	The sampler's stationary distribution does not depend on the start, but
//	burn-in length and the stopping heuristic do, so the choice matters:
//	  • Random — i.i.d. uniform entries scaled to the target's magnitude.
//	             Cheap, unbiased, different per run (per-run RNG stream).
//	  • Fixed  — caller-supplied W₀/H₀, deep-copied for every run.
//	             Reproduces a known starting point exactly.
//	  • NNDSVD — Boutsidis–Gallopoulos non-negative double SVD.
//	             Deterministic, data-driven, typically shortens burn-in.
//
// All three satisfy the bd.Seeder interface; each call returns fresh
// matrices the engine may mutate freely.
//
// Contracts:
//   - returned W is n×rank and H is rank×m for an n×m target;
//   - every returned entry is finite and ≥ 0;
//   - the target matrix is never mutated.
//
// Reference for NNDSVD: Boutsidis, Gallopoulos (2008). SVD based
// initialization: A head start for nonnegative matrix factorization.
// Pattern Recognition 41(4), 1350–1362.
package seed
