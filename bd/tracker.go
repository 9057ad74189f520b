package bd

import "gonum.org/v1/gonum/mat"

// Snapshot is an immutable deep copy of one run's final factor pair.
type Snapshot struct {
	W *mat.Dense
	H *mat.Dense
}

// Tracker accumulates one Snapshot per completed run, in run order.
// Snapshots never share storage with each other or with the live engine
// state; mutating a Result leaves the tracker untouched and vice versa.
//
// The tracker is the only cross-run record this package keeps. Multi-chain
// or multi-run combination (averaging, Gelman–Rubin, …) is deliberately
// left to callers inspecting the snapshots.
type Tracker struct {
	snaps []Snapshot
}

// append deep-copies (w, h) into a new snapshot.
func (t *Tracker) append(w, h *mat.Dense) {
	t.snaps = append(t.snaps, Snapshot{
		W: mat.DenseCopyOf(w),
		H: mat.DenseCopyOf(h),
	})
}

// Len reports how many runs have been recorded.
func (t *Tracker) Len() int { return len(t.snaps) }

// At returns the i-th recorded snapshot (run order, 0-based).
// The caller must not mutate the returned matrices.
func (t *Tracker) At(i int) Snapshot { return t.snaps[i] }
