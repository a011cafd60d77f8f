package repositories

import "context"

// SequenceRepository hands out entry numbers. Implementations must serialize
// the increment so concurrent creations in the same period never observe the
// same value.
type SequenceRepository interface {
	// NextSequence atomically increments and returns the counter for the
	// given year. Counters start at 1 and reset per year.
	NextSequence(ctx context.Context, year int) (int64, error)
}
