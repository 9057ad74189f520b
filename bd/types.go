package bd

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
)

// Seeder produces the initial (W, H) pair for one run.
//
// Contracts:
//   - returned W is v.rows×rank, H is rank×v.cols, both entrywise ≥ 0;
//   - each call must return fresh matrices (the engine mutates them in place);
//   - rng is the run's private deterministic stream; implementations that do
//     not need randomness may ignore it.
//
// Implementations live in package seed (Random, Fixed, NNDSVD).
type Seeder interface {
	Initialize(v *mat.Dense, rank int, rng *rand.Rand) (w, h *mat.Dense, err error)
}

// Result holds the outcome of a factorization: the final run's state.
type Result struct {
	// W is the n×rank basis matrix, H the rank×m mixture matrix.
	W *mat.Dense
	H *mat.Dense

	// Sigma2 is the final noise variance σ². If Options.HoldSigma was set it
	// equals Options.Sigma exactly.
	Sigma2 float64

	// Iterations is the number of sweeps executed by the final run.
	Iterations int

	// Objective is the final sum of squared residuals ‖V − W·H‖²_F.
	Objective float64

	// Trajectory is the per-sweep objective sequence of the final run,
	// starting with the post-seeding value. Useful for external convergence
	// diagnostics; the stopping policy only ever sees its last two entries.
	Trajectory []float64

	// GibbsSamples and Chains echo the configured schedule so that external
	// diagnostics (sample counts, multi-chain statistics) can interpret the
	// tracker contents without access to the Options value.
	GibbsSamples int
	Chains       int

	// Runs holds one deep-copied (W,H) snapshot per completed run when
	// tracking was active (Options.Track and NRun > 1); nil otherwise.
	Runs *Tracker
}
