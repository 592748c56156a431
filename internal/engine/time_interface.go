package engine

import "time"

// TimeProvider provides the clock used to stamp batch results.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider implements TimeProvider using real time functions.
type RealTimeProvider struct{}

// Now returns the current time.
func (r *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// FixedTimeProvider returns the times in Times in order, repeating the last one.
type FixedTimeProvider struct {
	Times []time.Time
	next  int
}

// Now returns the next configured time.
func (f *FixedTimeProvider) Now() time.Time {
	if len(f.Times) == 0 {
		return time.Time{}
	}

	t := f.Times[min(f.next, len(f.Times)-1)]
	f.next++

	return t
}
