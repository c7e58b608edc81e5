// Package dinstant implements Instant, a point in time that knows its own calendar fields.
//
// An Instant is an absolute time (milliseconds since the Unix epoch) read through a fixed UTC
// offset, UTC unless an Option says otherwise.  Its calendar fields (year, month, day of month,
// day of week, hour, minute, second, millisecond) are computed together on first use and cached;
// every mutation drops the whole cache, so a getter never returns a field computed from an older
// absolute time.
//
// Months are numbered 1 (January) through 12 (December) everywhere in this package's API.
// Weekdays are numbered 0 (Sunday) through 6 (Saturday).
package dinstant

import (
	"context"
	"sync"
	"time"

	"github.com/datawire/depoch/dtime"
)

const msPerDay = 86400000

type calendar struct {
	year, month, day, weekday   int
	hour, minute, second, milli int
}

// Instant is a point in time with memoized calendar fields.  The zero Instant is the Unix epoch
// in UTC.  An Instant is safe for concurrent use, but must not be copied after first use; use
// Clone instead.
type Instant struct {
	mu     sync.Mutex
	ms     int64
	loc    *time.Location
	cached *calendar
}

// Option configures an Instant during construction.
type Option func(*Instant)

// InZone reads the Instant through a fixed offset of offsetSeconds east of UTC, with the zone
// abbreviation name.
func InZone(name string, offsetSeconds int) Option {
	return func(in *Instant) {
		in.loc = time.FixedZone(name, offsetSeconds)
	}
}

// InLocation reads the Instant through loc.  Only the offset that loc has at the Instant's
// absolute time is kept; later mutations do not follow loc's daylight-saving transitions.
func InLocation(loc *time.Location) Option {
	return func(in *Instant) {
		if loc == nil {
			loc = time.UTC
		}
		in.loc = loc
	}
}

// pin replaces in.loc with the fixed zone it has at in.ms.
func (in *Instant) pin() {
	if in.loc == nil || in.loc == time.UTC {
		in.loc = time.UTC
		return
	}
	name, offset := time.UnixMilli(in.ms).In(in.loc).Zone()
	in.loc = time.FixedZone(name, offset)
}

func newInstant(ms int64, opts []Option) *Instant {
	in := &Instant{ms: ms, loc: time.UTC}
	for _, opt := range opts {
		opt(in)
	}
	in.pin()
	return in
}

// FromEpochMillis returns an Instant for ms milliseconds since the Unix epoch.
func FromEpochMillis(ms int64, opts ...Option) *Instant {
	return newInstant(ms, opts)
}

// FromTime returns an Instant for t, truncated to the millisecond.  The Instant is read in UTC
// unless an Option says otherwise; t's own location is not consulted.
func FromTime(t time.Time, opts ...Option) *Instant {
	return newInstant(t.UnixMilli(), opts)
}

// Now returns an Instant for the current time according to the dtime.Clock on ctx.
func Now(ctx context.Context, opts ...Option) *Instant {
	return FromTime(dtime.Now(ctx), opts...)
}

// Date returns the Instant for the given calendar fields, read in the zone the options select
// (UTC by default).  month is 1-based.  Out-of-range values are normalized the way time.Date
// normalizes them.
func Date(year, month, day, hour, min, sec, msec int, opts ...Option) *Instant {
	in := &Instant{loc: time.UTC}
	for _, opt := range opts {
		opt(in)
	}
	in.ms = time.Date(year, time.Month(month), day, hour, min, sec, msec*int(time.Millisecond), in.loc).UnixMilli()
	in.pin()
	return in
}

// Clone returns an independent copy of in.
func (in *Instant) Clone() *Instant {
	in.mu.Lock()
	defer in.mu.Unlock()
	return &Instant{ms: in.ms, loc: in.zone()}
}

func (in *Instant) zone() *time.Location {
	if in.loc == nil {
		return time.UTC
	}
	return in.loc
}

// fields returns the cached calendar, computing it if needed.  Must be called with mu held.
func (in *Instant) fields() *calendar {
	if in.cached == nil {
		t := time.UnixMilli(in.ms).In(in.zone())
		year, month, day := t.Date()
		hour, minute, second := t.Clock()
		in.cached = &calendar{
			year:    year,
			month:   int(month),
			day:     day,
			weekday: int(t.Weekday()),
			hour:    hour,
			minute:  minute,
			second:  second,
			milli:   t.Nanosecond() / int(time.Millisecond),
		}
	}
	return in.cached
}

func (in *Instant) read(get func(*calendar) int) int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return get(in.fields())
}

// Year returns the year, such as 2024.
func (in *Instant) Year() int { return in.read(func(c *calendar) int { return c.year }) }

// Month returns the month, 1 through 12.
func (in *Instant) Month() int { return in.read(func(c *calendar) int { return c.month }) }

// DayOfMonth returns the day of the month, 1 through 31.
func (in *Instant) DayOfMonth() int { return in.read(func(c *calendar) int { return c.day }) }

// DayOfWeek returns the day of the week, 0 (Sunday) through 6 (Saturday).
func (in *Instant) DayOfWeek() int { return in.read(func(c *calendar) int { return c.weekday }) }

// Hour returns the hour, 0 through 23.
func (in *Instant) Hour() int { return in.read(func(c *calendar) int { return c.hour }) }

// Minute returns the minute, 0 through 59.
func (in *Instant) Minute() int { return in.read(func(c *calendar) int { return c.minute }) }

// Second returns the second, 0 through 59.
func (in *Instant) Second() int { return in.read(func(c *calendar) int { return c.second }) }

// Millisecond returns the millisecond within the second, 0 through 999.
func (in *Instant) Millisecond() int { return in.read(func(c *calendar) int { return c.milli }) }

// EpochMillis returns the absolute time as milliseconds since the Unix epoch.
func (in *Instant) EpochMillis() int64 {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.ms
}

// Time returns the Instant as a time.Time in the Instant's zone.
func (in *Instant) Time() time.Time {
	in.mu.Lock()
	defer in.mu.Unlock()
	return time.UnixMilli(in.ms).In(in.zone())
}

// Location returns the fixed zone the Instant is read in.
func (in *Instant) Location() *time.Location {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.zone()
}

// ZoneOffset returns the Instant's offset from UTC, in seconds east.
func (in *Instant) ZoneOffset() int {
	_, offset := in.Time().Zone()
	return offset
}

// ZoneAbbrev returns the Instant's zone abbreviation, such as "UTC".  It is empty for a fixed
// zone that was given no name.
func (in *Instant) ZoneAbbrev() string {
	name, _ := in.Time().Zone()
	return name
}

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// IsLeapYear reports whether the Instant's year is a leap year.
func (in *Instant) IsLeapYear() bool {
	return IsLeapYear(in.Year())
}

// DayOfYear returns the number of days elapsed since December 31 of the previous year, so that
// January 1 is day 1.  Both ends are truncated to midnight in the Instant's zone before
// subtracting.
func (in *Instant) DayOfYear() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	c := in.fields()
	loc := in.zone()
	dec31 := time.Date(c.year, time.January, 0, 0, 0, 0, 0, loc).UnixMilli()
	midnight := time.Date(c.year, time.Month(c.month), c.day, 0, 0, 0, 0, loc).UnixMilli()
	return int(ceilDiv(midnight-dec31, msPerDay))
}

// WeekOfYear returns floor((DayOfYear + DayOfMonth - (DayOfWeek + 10)) / 7).
//
// This is an approximation of the ISO-8601 week number carried over for compatibility with
// existing "ww" templates.  It disagrees with ISO-8601 for most dates; use
// Time().ISOWeek() where a correct ISO week is needed.
func (in *Instant) WeekOfYear() int {
	n := int64(in.DayOfYear() + in.DayOfMonth() - (in.DayOfWeek() + 10))
	return int(floorDiv(n, 7))
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int64) int64 {
	return -floorDiv(-a, b)
}
