package dataset

import "errors"

var (
	// ErrInvalidConfig indicates a generator config failed validation.
	ErrInvalidConfig = errors.New("taskgym: invalid config")
	// ErrOutOfRange indicates an indexed access outside [0, size).
	ErrOutOfRange = errors.New("taskgym: index out of range")
	// ErrEndOfSequence signals that a cursor has visited every index.
	// It is a terminal signal, not a failure.
	ErrEndOfSequence = errors.New("taskgym: end of sequence")
	// ErrInfeasible indicates a constrained generator exhausted its retry
	// budget without finding an acceptable sample.
	ErrInfeasible = errors.New("taskgym: generation infeasible")
)
