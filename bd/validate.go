// Package bd - validation shared by Factorize and the engine.
//
// This file contains small, tight helpers that:
//  1. Validate Options combinations (rank, schedule, stopping bounds).
//  2. Validate prior-rate matrices (shape, negativity, NaN/Inf).
//  3. Validate the target matrix and exclusion masks.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - Everything is checked once, before the first sweep; the hot loop
//     re-validates nothing.
package bd

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// validateAll verifies the target matrix, the seeder and the full Options
// value. It returns the prior-rate matrices with nil defaults resolved to
// zero matrices (the improper flat non-negative prior).
//
// Complexity: O(n·m) for the entry scans.
func validateAll(v *mat.Dense, seeder Seeder, opts Options) (alpha, beta *mat.Dense, err error) {
	if v == nil || seeder == nil {
		return nil, nil, ErrNilInput
	}
	if err = validateOptionsStandalone(opts); err != nil {
		return nil, nil, err
	}

	n, m := v.Dims()
	if err = validateTarget(v); err != nil {
		return nil, nil, err
	}
	if alpha, err = validateRates(opts.Alpha, n, opts.Rank); err != nil {
		return nil, nil, err
	}
	if beta, err = validateRates(opts.Beta, opts.Rank, m); err != nil {
		return nil, nil, err
	}
	if err = validateMasks(opts); err != nil {
		return nil, nil, err
	}

	return alpha, beta, nil
}

// validateOptionsStandalone checks internal consistency of Options without
// referencing the target matrix.
//
// Complexity: O(1).
func validateOptionsStandalone(opts Options) error {
	// Rank must admit at least one basis column.
	if opts.Rank < 1 {
		return ErrInvalidHyperparameter
	}
	// σ² is a variance; zero or negative starting values are undefined.
	if opts.Sigma <= 0 || math.IsNaN(opts.Sigma) || math.IsInf(opts.Sigma, 0) {
		return ErrInvalidHyperparameter
	}
	// Inverse-Gamma prior: negative scale or shape inverts the density.
	if opts.Theta < 0 || opts.K < 0 {
		return ErrInvalidHyperparameter
	}
	// Schedule: burn-in may be empty, thinning may not.
	if opts.Skip < 0 || opts.Stride < 1 || opts.Chains < 1 || opts.TestConv < 0 {
		return ErrInvalidHyperparameter
	}
	if opts.GibbsSamples < 1 {
		return ErrInvalidHyperparameter
	}
	// Stopping bounds: 0 means "disabled", negatives are undefined.
	if opts.MaxIters < 0 || opts.MinResiduals < 0 {
		return ErrInvalidHyperparameter
	}
	// Orchestration.
	if opts.NRun < 1 || opts.Workers < 0 {
		return ErrInvalidHyperparameter
	}

	return nil
}

// validateTarget rejects negative or non-finite entries in V.
//
// Complexity: O(n·m).
func validateTarget(v *mat.Dense) error {
	n, m := v.Dims()

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < m; j++ {
			x := v.At(i, j)
			if x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
				return ErrNegativeEntry
			}
		}
	}

	return nil
}

// validateRates checks one prior-rate matrix against the expected shape and
// resolves nil to an all-zero matrix of that shape.
//
// Complexity: O(rows·cols).
func validateRates(rates *mat.Dense, rows, cols int) (*mat.Dense, error) {
	if rates == nil {
		return mat.NewDense(rows, cols, nil), nil
	}

	r, c := rates.Dims()
	if r != rows || c != cols {
		return nil, ErrShapeMismatch
	}

	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			x := rates.At(i, j)
			if x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, ErrInvalidHyperparameter
			}
		}
	}

	return rates, nil
}

// validateMasks checks that non-nil exclusion masks match the rank.
//
// Complexity: O(1).
func validateMasks(opts Options) error {
	if opts.HoldW != nil && len(opts.HoldW) != opts.Rank {
		return ErrInvalidHyperparameter
	}
	if opts.HoldH != nil && len(opts.HoldH) != opts.Rank {
		return ErrInvalidHyperparameter
	}

	return nil
}

// validateSeeded checks the Seeder's output against its contract: exact
// shapes and entrywise non-negative, finite values.
//
// Complexity: O((n+m)·rank).
func validateSeeded(w, h *mat.Dense, n, m, rank int) error {
	if w == nil || h == nil {
		return ErrNilInput
	}

	wr, wc := w.Dims()
	hr, hc := h.Dims()
	if wr != n || wc != rank || hr != rank || hc != m {
		return ErrShapeMismatch
	}

	var i, j int
	for i = 0; i < wr; i++ {
		for j = 0; j < wc; j++ {
			if x := w.At(i, j); x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
				return ErrNegativeEntry
			}
		}
	}
	for i = 0; i < hr; i++ {
		for j = 0; j < hc; j++ {
			if x := h.At(i, j); x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
				return ErrNegativeEntry
			}
		}
	}

	return nil
}
