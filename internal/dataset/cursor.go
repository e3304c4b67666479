package dataset

import "iter"

// Cursor is a forward iteration over a dataset, visiting indices 0..size-1
// in order. A cursor starts fresh, becomes active on the first Next, and is
// exhausted once every index has been emitted; after that every Next returns
// ErrEndOfSequence. Each call to NewCursor creates an independent cursor, so
// concurrent iterations over the same dataset do not interfere.
type Cursor struct {
	d    Dataset
	next int
}

// NewCursor returns a fresh cursor over d.
func NewCursor(d Dataset) *Cursor {
	return &Cursor{d: d}
}

// Next generates and returns the sample at the cursor position, then
// advances. It returns ErrEndOfSequence once the cursor is past the last
// index.
func (c *Cursor) Next() (Sample, error) {
	if c.next >= c.d.Size() {
		return Sample{}, ErrEndOfSequence
	}
	s, err := c.d.Get(c.next)
	if err != nil {
		return Sample{}, err
	}
	c.next++
	return s, nil
}

// Samples returns a range-over-func iteration over d in index order. Each
// call starts from index zero with its own cursor. A generation error stops
// the iteration after yielding it; callers that need the index use the
// sample's position in the walk.
func Samples(d Dataset) iter.Seq2[Sample, error] {
	return func(yield func(Sample, error) bool) {
		c := NewCursor(d)
		for {
			s, err := c.Next()
			if err == ErrEndOfSequence {
				return
			}
			if !yield(s, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}
