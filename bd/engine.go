// Package bd - the single-chain Gibbs engine.
//
// The engine owns one Markov chain: it seeds (W,H), repeatedly invokes the
// three conditional samplers in fixed order, tracks the running objective
// and applies the stopping policy. It is a small state machine:
//
//	Initializing → Sweeping → Converged
//	                   └────→ Failed      (NaN/Inf objective, fatal per run)
//
// All state is private to the engine; independent engines never share
// anything beyond the read-only inputs, which makes parallel runs safe.
package bd

import (
	"math"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
)

// engineState enumerates the engine's lifecycle.
type engineState int

const (
	stateInitializing engineState = iota
	stateSweeping
	stateConverged
	stateFailed
)

// gibbsEngine runs one chain over private copies of the sampled state.
type gibbsEngine struct {
	v     *mat.Dense
	alpha *mat.Dense
	beta  *mat.Dense
	opts  Options

	monitor Monitor
	rng     *rand.Rand

	w      *mat.Dense
	h      *mat.Dense
	sigma2 float64

	iter       int
	trajectory []float64
	state      engineState
}

// newEngine wires one run's engine. alpha and beta must already be resolved
// (non-nil); rng is the run's private stream.
func newEngine(v, alpha, beta *mat.Dense, opts Options, rng *rand.Rand) *gibbsEngine {
	return &gibbsEngine{
		v:       v,
		alpha:   alpha,
		beta:    beta,
		opts:    opts,
		monitor: opts.monitor(),
		rng:     rng,
		state:   stateInitializing,
	}
}

// run executes the chain to completion: seed, sweep until the monitor stops
// the loop, then emit the final state.
//
// Errors:
//   - seeding errors and contract violations from the Seeder (fail fast);
//   - ErrNumericInstability when the objective leaves the finite range.
//
// Complexity: O(iterations · passes · n·m·rank).
func (e *gibbsEngine) run(seeder Seeder) (Result, error) {
	// Initializing: obtain (W,H), fix σ² at its configured start value.
	n, m := e.v.Dims()

	w, h, err := seeder.Initialize(e.v, e.opts.Rank, e.rng)
	if err != nil {
		e.state = stateFailed

		return Result{}, err
	}
	if err = validateSeeded(w, h, n, m, e.opts.Rank); err != nil {
		e.state = stateFailed

		return Result{}, err
	}
	e.w, e.h = w, h
	e.sigma2 = e.opts.Sigma

	// The objective starts as previous == current: the monitor's first call
	// sees a flat trajectory and decides on iter alone.
	var pobj, cobj float64
	cobj = residualSS(e.v, e.w, e.h)
	pobj = cobj
	e.trajectory = append(e.trajectory, cobj)

	// Sweeping.
	e.state = stateSweeping
	for e.monitor.Continue(pobj, cobj, e.iter) {
		pobj = cobj
		e.sweep()

		// The objective is recomputed every TestConv-th sweep and held at
		// its last value in between, trading stopping granularity for cost.
		if e.opts.TestConv == 0 || e.iter%e.opts.TestConv == 0 {
			cobj = residualSS(e.v, e.w, e.h)
		}
		if math.IsNaN(cobj) || math.IsInf(cobj, 0) {
			e.state = stateFailed

			return Result{}, ErrNumericInstability
		}

		e.iter++
		e.trajectory = append(e.trajectory, cobj)
	}

	// Converged.
	e.state = stateConverged

	return Result{
		W:            e.w,
		H:            e.h,
		Sigma2:       e.sigma2,
		Iterations:   e.iter,
		Objective:    cobj,
		Trajectory:   e.trajectory,
		GibbsSamples: e.opts.GibbsSamples,
		Chains:       e.opts.Chains,
	}, nil
}

// sweep performs one retained Gibbs sample: Skip inner passes on the first
// sweep (burn-in, discarded by construction), Stride passes afterwards
// (thinning). Each pass redraws W, then H, then σ², in that fixed order -
// the mixture draw conditions on the just-updated basis, matching the
// standard alternating scheme.
func (e *gibbsEngine) sweep() {
	var passes int
	passes = e.opts.Stride
	if e.iter == 0 {
		passes = e.opts.Skip
	}

	var p int
	for p = 0; p < passes; p++ {
		sampleBasis(e.v, e.w, e.h, e.alpha, e.sigma2, e.opts.HoldW, e.rng)
		sampleMixture(e.v, e.w, e.h, e.beta, e.sigma2, e.opts.HoldH, e.rng)
		if !e.opts.HoldSigma {
			e.sigma2 = sampleNoise(e.v, e.w, e.h, e.opts.Theta, e.opts.K, e.rng)
		}
	}
}
