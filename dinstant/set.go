package dinstant

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Field names a calendar field of an Instant.
type Field int

const (
	Year Field = iota
	Month
	Day
	Hour
	Minute
	Second
	Millisecond
	// DayOfWeek can be read through Get but not set.
	DayOfWeek
)

var fieldNames = [...]string{
	Year:        "year",
	Month:       "month",
	Day:         "day",
	Hour:        "hour",
	Minute:      "minute",
	Second:      "second",
	Millisecond: "millisecond",
	DayOfWeek:   "dayOfWeek",
}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "Field(" + strconv.Itoa(int(f)) + ")"
	}
	return fieldNames[f]
}

// ParseField returns the Field with the given name ("year", "month", "day", ...).  A trailing
// "s" is accepted.
func ParseField(name string) (Field, error) {
	name = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), "s")
	for f, n := range fieldNames {
		if strings.ToLower(n) == name {
			return Field(f), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownField, "%q", name)
}

// Get returns the current value of field.
func (in *Instant) Get(field Field) (int, error) {
	in.mu.Lock()
	defer in.mu.Unlock()
	c := in.fields()
	switch field {
	case Year:
		return c.year, nil
	case Month:
		return c.month, nil
	case Day:
		return c.day, nil
	case Hour:
		return c.hour, nil
	case Minute:
		return c.minute, nil
	case Second:
		return c.second, nil
	case Millisecond:
		return c.milli, nil
	case DayOfWeek:
		return c.weekday, nil
	}
	return 0, errors.Wrapf(ErrUnknownField, "%d", int(field))
}

// Set assigns field from a string.  A value with an explicit sign ("+3", "-12") is a delta from
// the field's current value; anything else ("15") is the new absolute value.  Month values are
// 1-based.
//
// Values outside a field's range roll over into the neighbouring fields by ordinary calendar
// arithmetic: setting Day to "+3" on January 30 yields February 2.
func (in *Instant) Set(field Field, value string) error {
	v := strings.TrimSpace(value)
	n, err := strconv.Atoi(v)
	if err != nil {
		return errors.Wrapf(ErrInvalidValue, "%s: %q", field, value)
	}
	if v[0] == '+' || v[0] == '-' {
		return in.Add(field, n)
	}
	return in.SetInt(field, n)
}

// SetInt assigns an absolute value to field.
func (in *Instant) SetInt(field Field, v int) error {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.assign(field, func(int) int { return v })
}

// Add adds delta to field.
func (in *Instant) Add(field Field, delta int) error {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.assign(field, func(cur int) int { return cur + delta })
}

// SetEpochMillis replaces the absolute time.
func (in *Instant) SetEpochMillis(ms int64) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.ms = ms
	in.cached = nil
}

// AddMillis moves the absolute time by delta milliseconds, without any calendar arithmetic.
func (in *Instant) AddMillis(delta int64) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.ms += delta
	in.cached = nil
}

// assign recomputes the absolute time after replacing one field.  Must be called with mu held.
func (in *Instant) assign(field Field, update func(cur int) int) error {
	c := *in.fields()
	var target *int
	switch field {
	case Year:
		target = &c.year
	case Month:
		target = &c.month
	case Day:
		target = &c.day
	case Hour:
		target = &c.hour
	case Minute:
		target = &c.minute
	case Second:
		target = &c.second
	case Millisecond:
		target = &c.milli
	case DayOfWeek:
		return errors.Wrapf(ErrReadOnlyField, "%s", field)
	default:
		return errors.Wrapf(ErrUnknownField, "%d", int(field))
	}
	*target = update(*target)

	// time.Month is 1-based, like the month field, and time.Date normalizes overflow in every
	// field the same way.
	in.ms = time.Date(c.year, time.Month(c.month), c.day, c.hour, c.minute, c.second, 0, in.zone()).
		UnixMilli() + int64(c.milli)
	in.cached = nil
	return nil
}
