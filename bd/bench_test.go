package bd_test

import (
	"testing"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bnmf/bd"
	"github.com/katalvlaran/bnmf/seed"
)

// buildRandomTarget constructs an n×m non-negative target with planted
// rank-r structure plus uniform noise, deterministically from seedVal.
func buildRandomTarget(n, m, r int, seedVal uint64) *mat.Dense {
	rng := rand.New(rand.NewSource(seedVal)) // deterministic seed for reproducibility

	var (
		w = mat.NewDense(n, r, nil)
		h = mat.NewDense(r, m, nil)
	)
	for i := 0; i < n; i++ {
		for k := 0; k < r; k++ {
			w.Set(i, k, rng.Float64())
		}
	}
	for k := 0; k < r; k++ {
		for j := 0; j < m; j++ {
			h.Set(k, j, rng.Float64())
		}
	}

	var v mat.Dense
	v.Mul(w, h)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			v.Set(i, j, v.At(i, j)+0.05*rng.Float64()) // keep entries ≥ 0
		}
	}

	return &v
}

// BenchmarkFactorize measures full factorizations on targets of increasing
// size. Burn-in dominates the cost, so Skip is kept moderate; each case uses
// its own planted-rank target.
func BenchmarkFactorize(b *testing.B) {
	cases := []struct {
		name    string
		n, m    int
		rank    int
		seedVal uint64
	}{
		{"Small", 20, 15, 3, 42},
		{"Medium", 60, 40, 5, 4242},
		{"Wide", 30, 120, 4, 424242},
	}

	for _, tc := range cases {
		tc := tc
		b.Run(tc.name, func(b *testing.B) {
			v := buildRandomTarget(tc.n, tc.m, tc.rank, tc.seedVal)

			opts := bd.DefaultOptions()
			opts.Rank = tc.rank
			opts.Skip = 10
			opts.MaxIters = 15
			opts.Seed = tc.seedVal

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := bd.Factorize(v, seed.Random{}, opts); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkSweepCost isolates the per-sweep price by bounding the run to a
// single retained sample with minimal burn-in.
func BenchmarkSweepCost(b *testing.B) {
	v := buildRandomTarget(40, 30, 4, 99)

	opts := bd.DefaultOptions()
	opts.Rank = 4
	opts.Skip = 1
	opts.MaxIters = 1
	opts.Seed = 99

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bd.Factorize(v, seed.Random{}, opts); err != nil {
			b.Fatal(err)
		}
	}
}
