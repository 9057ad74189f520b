package bd

import "errors"

var (
	// ErrNilInput indicates the target matrix V (or the Seeder) is nil.
	ErrNilInput = errors.New("bd: nil input")

	// ErrShapeMismatch indicates V, W, H, Alpha or Beta have incompatible
	// dimensions. Detected before any sweep runs.
	ErrShapeMismatch = errors.New("bd: incompatible matrix dimensions")

	// ErrNegativeEntry indicates the target matrix contains a negative or
	// non-finite entry; the model is defined for non-negative data only.
	ErrNegativeEntry = errors.New("bd: target matrix must be non-negative and finite")

	// ErrInvalidHyperparameter indicates a negative prior rate, a non-positive
	// initial noise variance, an invalid sampling schedule, or an exclusion
	// mask whose length differs from the factorization rank.
	ErrInvalidHyperparameter = errors.New("bd: invalid prior hyperparameter or schedule")

	// ErrNumericInstability indicates the objective became NaN or Inf during
	// sampling. Fatal for the current run; other runs are unaffected.
	ErrNumericInstability = errors.New("bd: objective diverged to NaN or Inf")
)
