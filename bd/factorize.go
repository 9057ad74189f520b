// Package bd - the multi-run orchestrator.
//
// Factorize is the single entry point: it validates everything once, then
// repeats the Gibbs engine over NRun independent runs. Runs share only the
// read-only target and prior matrices; each owns a private engine, factor
// pair and derived RNG stream, so they may execute in parallel without any
// change in results.
package bd

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"gonum.org/v1/gonum/mat"
)

// Factorize approximates v ≈ W·H by Gibbs sampling and returns the final
// run's state.
//
// Contracts:
//   - v is non-negative and finite; it is never mutated.
//   - opts should start from DefaultOptions with at least Rank set.
//   - seeder is called once per run with the run's private RNG stream.
//
// Semantics:
//   - NRun > 1 repeats the whole chain with independently derived streams;
//     the LAST run's (W, H, σ², iterations, objective) are surfaced. No
//     cross-run aggregation is performed.
//   - Track && NRun > 1 records a deep-copied Snapshot per completed run in
//     Result.Runs, in run order regardless of Workers.
//   - A run whose objective turns NaN/Inf fails alone; remaining runs still
//     execute. All run errors are joined and returned, each wrapped with its
//     run index. The Result carries the last successful run's state.
//
// Errors: validation sentinels (fail fast, before any sampling), seeder
// errors and ErrNumericInstability (per run, wrapped).
//
// Complexity: O(NRun · iterations · passes · n·m·rank).
func Factorize(v *mat.Dense, seeder Seeder, opts Options) (Result, error) {
	alpha, beta, err := validateAll(v, seeder, opts)
	if err != nil {
		return Result{}, err
	}

	var (
		results = make([]Result, opts.NRun)
		errs    = make([]error, opts.NRun)
	)

	runOne := func(run int) {
		eng := newEngine(v, alpha, beta, opts, runRNG(opts.Seed, run))
		results[run], errs[run] = eng.run(seeder)
		if errs[run] != nil {
			errs[run] = fmt.Errorf("bd: run %d: %w", run, errs[run])
		}
	}

	if opts.Workers > 1 && opts.NRun > 1 {
		// Bounded fan-out; runs write disjoint slice slots, no locking needed.
		// Errors stay in errs so one failed run cannot starve the others.
		var g errgroup.Group
		g.SetLimit(opts.Workers)
		var run int
		for run = 0; run < opts.NRun; run++ {
			r := run
			g.Go(func() error {
				runOne(r)

				return nil
			})
		}
		_ = g.Wait()
	} else {
		var run int
		for run = 0; run < opts.NRun; run++ {
			runOne(run)
		}
	}

	var tracker *Tracker
	if opts.Track && opts.NRun > 1 {
		tracker = &Tracker{}
		var run int
		for run = 0; run < opts.NRun; run++ {
			if errs[run] == nil {
				tracker.append(results[run].W, results[run].H)
			}
		}
	}

	// Surface the last run that completed; its Result carries the tracker.
	var final Result
	var run int
	for run = opts.NRun - 1; run >= 0; run-- {
		if errs[run] == nil {
			final = results[run]
			break
		}
	}
	final.Runs = tracker

	return final, errors.Join(errs...)
}
