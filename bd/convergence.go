package bd

// Monitor decides whether the engine may start another sweep.
//
// Continue is evaluated before each sweep with the previous objective pobj,
// the current objective cobj, and the number of sweeps executed so far
// (iter, 0-based; 0 ⇒ no sweep has run yet). Returning false stops the run.
//
// The policy is pluggable because the classical rule below treats a
// stochastic sampler like a deterministic optimizer; trace-based variants
// can be supplied through Options.Monitor without touching the engine.
type Monitor interface {
	Continue(pobj, cobj float64, iter int) bool
}

// MonotoneMonitor is the classical Bayesian-Decomposition stopping rule:
// keep sweeping while the objective strictly decreases, bounded by MaxIters.
//
// Rules (all must hold to continue; the last two are skipped while iter==0):
//   - MaxIters == 0 (unbounded) OR iter < MaxIters;
//   - MinResiduals == 0 (disabled) OR cobj − pobj > MinResiduals;
//   - cobj < pobj.
//
// The sampler's objective is stochastic, so cobj ≥ pobj is a legitimate and
// expected event; this is a heuristic convergence signal, not a guarantee of
// posterior convergence. Callers needing real MCMC diagnostics should
// post-process Result.Trajectory or the Tracker snapshots instead.
type MonotoneMonitor struct {
	// MaxIters bounds the number of sweeps; 0 means unbounded.
	MaxIters int

	// MinResiduals is the minimal required objective change per sweep;
	// 0 disables the check.
	MinResiduals float64
}

// Continue implements Monitor.
//
// Complexity: O(1).
func (m MonotoneMonitor) Continue(pobj, cobj float64, iter int) bool {
	// MaxIters is the sole hard bound on runtime; it applies even before
	// the first sweep.
	if m.MaxIters > 0 && iter >= m.MaxIters {
		return false
	}
	// Nothing to compare until one sweep has run.
	if iter == 0 {
		return true
	}
	if m.MinResiduals > 0 && cobj-pobj <= m.MinResiduals {
		return false
	}

	return cobj < pobj
}
