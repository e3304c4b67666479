// Package dataset defines the generation core shared by every task
// generator: validated configs, the deterministic index-to-sample addressing
// scheme, and the virtual (never materialized) sequence contract.
package dataset

import (
	"fmt"
	"math/rand/v2"
)

// Config is the validated, immutable parameter bundle for one generator
// kind. Validate must be a pure check over the config's own fields; it runs
// before any sample is produced and fails with an error naming the violated
// constraint, wrapping ErrInvalidConfig.
type Config interface {
	Validate() error
}

// Dataset is a virtual, fixed-size, randomly-indexable sequence of samples.
// Implementations hold a Config and a resolved base seed, never allocate
// their full extent, and recompute every sample on access.
type Dataset interface {
	// Size returns the declared logical length.
	Size() int

	// Seed returns the base seed resolved at construction, fixed for the
	// dataset's lifetime.
	Seed() int64

	// Get generates the sample at index i. It fails with ErrOutOfRange for
	// i outside [0, Size()). Repeated calls with the same index return an
	// identical sample, and accessing one index never affects another.
	Get(i int) (Sample, error)
}

// Seed returns a pointer to v, for filling optional config seed fields.
func Seed(v int64) *int64 { return &v }

// ResolveSeed returns the explicit seed when non-nil, otherwise a seed drawn
// once from the process-global source. The result is fixed for the lifetime
// of the dataset that stores it.
func ResolveSeed(explicit *int64) int64 {
	if explicit != nil {
		return *explicit
	}
	return rand.Int64()
}

// Base carries the resolved seed and virtual size shared by all generators,
// and implements the per-index stream derivation. Concrete datasets embed it
// and add their Get method.
type Base struct {
	seed int64
	size int
}

// NewBase resolves the seed (drawing one when explicit is nil) and fixes the
// virtual size.
func NewBase(explicit *int64, size int) Base {
	return Base{seed: ResolveSeed(explicit), size: size}
}

// Seed returns the resolved base seed.
func (b Base) Seed() int64 { return b.seed }

// Size returns the virtual size.
func (b Base) Size() int { return b.size }

// Stream derives the local pseudorandom stream for index i, seeded by the
// fixed combination seed+i. It is the only source of randomness a generator
// may use for that index: streams for distinct indices never share state, so
// samples are identical across runs and independent of access order.
func (b Base) Stream(i int) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(b.seed+int64(i)), 0))
}

// CheckBounds returns ErrOutOfRange (with context) unless 0 <= i < Size().
func (b Base) CheckBounds(i int) error {
	if i < 0 || i >= b.size {
		return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, b.size)
	}
	return nil
}

// IntBetween returns a uniform value in the inclusive range [lo, hi].
func IntBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}
