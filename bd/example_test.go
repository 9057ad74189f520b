package bd_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bnmf/bd"
	"github.com/katalvlaran/bnmf/seed"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Factorize
////////////////////////////////////////////////////////////////////////////////

// ExampleFactorize factorizes a small non-negative matrix with rank 2.
// Scenario:
//
//   - 4×3 target with two repeated row patterns (true rank ≈ 2)
//   - random seeding, 10 burn-in passes, at most 20 sweeps
//   - Seed=1 keeps the run fully reproducible
//
// The printed facts are structural, so the example is stable across runs.
func ExampleFactorize() {
	v := mat.NewDense(4, 3, []float64{
		2, 1, 0,
		0, 1, 2,
		2, 1, 0,
		0, 1, 2,
	})

	opts := bd.DefaultOptions()
	opts.Rank = 2
	opts.Skip = 10
	opts.MaxIters = 20
	opts.Seed = 1

	res, err := bd.Factorize(v, seed.Random{}, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	wr, wc := res.W.Dims()
	hr, hc := res.H.Dims()
	nonneg := true
	for i := 0; i < wr; i++ {
		for k := 0; k < wc; k++ {
			nonneg = nonneg && res.W.At(i, k) >= 0
		}
	}
	for k := 0; k < hr; k++ {
		for j := 0; j < hc; j++ {
			nonneg = nonneg && res.H.At(k, j) >= 0
		}
	}

	fmt.Printf("W: %d×%d\n", wr, wc)
	fmt.Printf("H: %d×%d\n", hr, hc)
	fmt.Println("non-negative:", nonneg)
	fmt.Println("σ² positive:", res.Sigma2 > 0)
	fmt.Println("sweeps ≥ 1:", res.Iterations >= 1)

	// Output:
	// W: 4×2
	// H: 2×3
	// non-negative: true
	// σ² positive: true
	// sweeps ≥ 1: true
}

////////////////////////////////////////////////////////////////////////////////
// Example: multi-run tracking
////////////////////////////////////////////////////////////////////////////////

// ExampleFactorize_tracking repeats the factorization over three independent
// runs and inspects the per-run snapshots.
func ExampleFactorize_tracking() {
	v := mat.NewDense(4, 3, []float64{
		2, 1, 0,
		0, 1, 2,
		2, 1, 0,
		0, 1, 2,
	})

	opts := bd.DefaultOptions()
	opts.Rank = 2
	opts.Skip = 10
	opts.MaxIters = 20
	opts.Seed = 7
	opts.NRun = 3
	opts.Track = true

	res, err := bd.Factorize(v, seed.Random{}, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("snapshots:", res.Runs.Len())
	wr, wc := res.Runs.At(0).W.Dims()
	fmt.Printf("snapshot W: %d×%d\n", wr, wc)

	// Output:
	// snapshots: 3
	// snapshot W: 4×2
}
