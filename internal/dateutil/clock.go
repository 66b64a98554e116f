package dateutil

import "time"

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant.
type FixedClock struct {
	Instant time.Time
}

// NewFixedClock returns a clock frozen at the given epoch seconds.
func NewFixedClock(ts int64) FixedClock {
	return FixedClock{Instant: time.Unix(ts, 0).UTC()}
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.Instant
}

// CurrentTimestamp returns the clock's current time as whole epoch seconds.
// A nil clock falls back to the system clock.
func CurrentTimestamp(c Clock) int64 {
	if c == nil {
		c = SystemClock{}
	}
	return c.Now().Unix()
}
