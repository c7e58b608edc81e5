package dtime

import (
	"context"
	"sort"
	"sync"
	"time"
)

type alarm struct {
	ctx context.Context
	fn  func()
}

// FakeClock is a Clock implementation that keeps track of fake time for us, so that we don't have
// to rely on the real system clock.  Relative-time phrases ("3 days ago") are only testable if
// "now" holds still; FakeClock holds it still until you Step it.
//
// To use FakeClock, use NewFakeClock to instantiate it, then Step (or StepSec) to change its
// current time.  FakeClock also remembers its boot time (the time when it was instantiated) so that
// you can meaningfully talk about how much fake time has passed since boot.
type FakeClock struct {
	mu sync.Mutex

	bootTime    time.Time
	currentTime time.Time

	alarms map[time.Time][]alarm
}

// NewFakeClock creates a new FakeClock structure, booted at bootTime.
func NewFakeClock(bootTime time.Time) *FakeClock {
	return &FakeClock{
		bootTime:    bootTime,
		currentTime: bootTime,
	}
}

// Step steps a FakeClock by the given duration.  Any duration may be used, with all the obvious
// concerns about stepping the fake clock into the past.
func (f *FakeClock) Step(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.currentTime = f.currentTime.Add(d)
	f.fireAlarms()
}

// StepSec steps a FakeClock by a given number of seconds. Any number of seconds is valid, with all
// the obvious concerns about stepping the fake clock into the past.
func (f *FakeClock) StepSec(s int) {
	f.Step(time.Duration(s) * time.Second)
}

// Set jumps the FakeClock to t, without changing its boot time.
func (f *FakeClock) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.currentTime = t
	f.fireAlarms()
}

// BootTime returns the time at which the FakeClock was instantiated.
//
// This is an accessor because we don't really want people changing the boot time after boot.
func (f *FakeClock) BootTime() time.Time {
	return f.bootTime
}

// TimeSinceBoot returns the amount of fake time that has passed since the FakeClock was
// instantiated.
func (f *FakeClock) TimeSinceBoot() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.currentTime.Sub(f.bootTime)
}

// Now implements Clock.
func (f *FakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.currentTime
}

// At implements Clock.  fn runs on its own goroutine once Step or Set brings the FakeClock to t.
func (f *FakeClock) At(ctx context.Context, t time.Time, fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !t.After(f.currentTime) {
		go fn()
		return
	}
	if f.alarms == nil {
		f.alarms = make(map[time.Time][]alarm)
	}
	f.alarms[t] = append(f.alarms[t], alarm{ctx: ctx, fn: fn})
}

// fireAlarms starts every alarm that is due and whose Context is still live.  Must
// be called with mu held.
func (f *FakeClock) fireAlarms() {
	var due []time.Time
	for t := range f.alarms {
		if !t.After(f.currentTime) {
			due = append(due, t)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		return due[i].Before(due[j])
	})
	for _, t := range due {
		for _, a := range f.alarms[t] {
			if a.ctx.Err() == nil {
				go a.fn()
			}
		}
		delete(f.alarms, t)
	}
}
