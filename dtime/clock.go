// Package dtime provides the "now" that the rest of depoch reads.
//
// dtime.Now(ctx) is equivalent to time.Now() except that you can override it using WithClock, in
// order to have control over time for testing.  Every place in depoch that needs the current time
// (constructing an Instant for "now", describing a date relative to now) reads it through here, so
// a test can pin the whole library to a single moment with one FakeClock.
//
// dtime.After(ctx, d) is likewise time.After(d) on the Context's Clock, and it can be abandoned by
// canceling the Context.
package dtime

import (
	"context"
	"time"
)

// Clock is the type you must implement and pass to WithClock if you would like to spoof the system
// clock.  StdClock{} is the actual system clock, and FakeClock is a handy mock clock that you can
// use instead of implementing your own.
type Clock interface {
	// Now returns the current Time.
	Now() time.Time

	// At arranges for fn to be called once the Clock reaches t, unless ctx is canceled first.
	// If t is not after Now(), fn is called right away.  fn may run on another goroutine.
	At(ctx context.Context, t time.Time, fn func())
}

// ClockFunc adapts a plain function (such as time.Now) to the Clock interface.  Its At waits on
// the real system clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time {
	return f()
}

// At implements Clock.
func (f ClockFunc) At(ctx context.Context, t time.Time, fn func()) {
	StdClock{}.At(ctx, time.Now().Add(t.Sub(f())), fn)
}

type clockCtxKey struct{}

func getClock(ctx context.Context) Clock {
	var clock Clock = StdClock{}
	if untyped := ctx.Value(clockCtxKey{}); untyped != nil {
		clock = untyped.(Clock)
	}
	return clock
}

// Now returns the current time according to the Clock associated with ctx.
func Now(ctx context.Context) time.Time {
	return getClock(ctx).Now()
}

// Since returns the time elapsed since t, according to the Clock associated with ctx.
func Since(ctx context.Context, t time.Time) time.Duration {
	return Now(ctx).Sub(t)
}

// WithClock changes the Clock used by dtime functions that are passed the resulting Context.
func WithClock(ctx context.Context, clock Clock) context.Context {
	return context.WithValue(ctx, clockCtxKey{}, clock)
}

// After waits for d to pass on the Clock associated with ctx, then sends that Clock's current time
// on the returned channel.  If ctx is canceled first, nothing is ever sent.
func After(ctx context.Context, d time.Duration) <-chan time.Time {
	clock := getClock(ctx)
	ch := make(chan time.Time, 1)
	clock.At(ctx, clock.Now().Add(d), func() {
		ch <- clock.Now()
	})
	return ch
}
