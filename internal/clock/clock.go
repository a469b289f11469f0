package clock

import "time"

// Clock abstracts the current time so lock-status and interval
// computations can be tested with an injected clock.
type Clock interface {
	Now() time.Time
}

// System is the wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed always reports the same instant. Test helper.
type Fixed struct {
	Time time.Time
}

func (f Fixed) Now() time.Time { return f.Time }
