package seed

import "errors"

var (
	// ErrNilMatrix indicates the target matrix is nil.
	ErrNilMatrix = errors.New("seed: nil target matrix")

	// ErrBadRank indicates the requested rank is not in the valid range for
	// the strategy (≥ 1, and ≤ min(n,m) for NNDSVD).
	ErrBadRank = errors.New("seed: factorization rank out of range")

	// ErrShapeMismatch indicates supplied starting factors do not match the
	// target's dimensions and the requested rank.
	ErrShapeMismatch = errors.New("seed: starting factors have incompatible dimensions")

	// ErrSVDFailed indicates the thin SVD of the target did not converge.
	ErrSVDFailed = errors.New("seed: singular value decomposition failed")
)
