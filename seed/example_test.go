package seed_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bnmf/seed"
)

// ExampleNNDSVD seeds a 4×3 target deterministically from its SVD: no
// randomness, so the structural facts below never change.
func ExampleNNDSVD() {
	v := mat.NewDense(4, 3, []float64{
		2, 1, 0,
		0, 1, 2,
		2, 1, 0,
		0, 1, 2,
	})

	w, h, err := seed.NNDSVD{}.Initialize(v, 2, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	wr, wc := w.Dims()
	hr, hc := h.Dims()
	fmt.Printf("W: %d×%d\n", wr, wc)
	fmt.Printf("H: %d×%d\n", hr, hc)
	fmt.Println("leading basis column positive:", w.At(0, 0) > 0 && w.At(1, 0) > 0)

	// Output:
	// W: 4×2
	// H: 2×3
	// leading basis column positive: true
}
