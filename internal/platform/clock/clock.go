// Package clock provides a tiny time seam so time-dependent logic stays testable
package clock

import "time"

// Clock yields the current instant
type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to Clock
type Func func() time.Time

// Now implements Clock
func (f Func) Now() time.Time { return f() }

// System is the wall clock
func System() Clock { return Func(time.Now) }

// Fixed returns a Clock pinned to t
func Fixed(t time.Time) Clock { return Func(func() time.Time { return t }) }

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
