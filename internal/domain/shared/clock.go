package shared

import "time"

// Clock supplies the current time. Domain timestamps are always UTC.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock is the wall clock in UTC.
var SystemClock Clock = ClockFunc(func() time.Time { return time.Now().UTC() })

var domainClock = SystemClock

// Now returns the current domain time.
func Now() time.Time {
	return domainClock.Now()
}

// SetClock replaces the domain clock and returns a function restoring the
// previous one. Intended for tests.
func SetClock(c Clock) (restore func()) {
	prev := domainClock
	domainClock = c
	return func() { domainClock = prev }
}

// FixedClock returns a Clock frozen at t.
func FixedClock(t time.Time) Clock {
	t = t.UTC()
	return ClockFunc(func() time.Time { return t })
}
