// Package drelative describes the distance between two moments as a coarse human phrase, such
// as "3 days ago" or "in 2 months".
package drelative

import (
	"strconv"
	"strings"
	"time"

	"github.com/datawire/depoch/dinstant"
	"github.com/datawire/depoch/dlang"
)

const (
	// elasticYear is the year length, in seconds, used for targets in the future.  It is
	// shorter than a calendar year, so "in 1 year" appears about two weeks before a full 365
	// days have passed.
	elasticYear = 30304745

	secondsPerYear   = 365 * secondsPerDay
	secondsPerMonth  = 30 * secondsPerDay
	secondsPerDay    = 24 * secondsPerHour
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerMinute = 60
)

type unit struct {
	seconds int64
	word    func(dlang.Relative) string
}

// units is ordered from largest to smallest; the first unit that fits is used.
var units = []unit{
	{secondsPerYear, func(r dlang.Relative) string { return r.Year }},
	{secondsPerMonth, func(r dlang.Relative) string { return r.Month }},
	{secondsPerDay, func(r dlang.Relative) string { return r.Day }},
	{secondsPerHour, func(r dlang.Relative) string { return r.Hour }},
	{secondsPerMinute, func(r dlang.Relative) string { return r.Minute }},
}

// Describe returns a phrase for how far target is from ref, in lang's words.
//
// Targets after ref read as "<Future> <n> <unit>" ("in 3 days"); targets at or before ref read as
// "<n> <unit> <Past>" ("3 days ago").  The magnitude is whole seconds rounded toward negative
// infinity, then divided down into the largest unit it reaches (365-day years, 30-day months,
// days, hours, minutes) and truncated.  A future difference of elasticYear seconds or more
// counts in elastic years instead.  A difference under a minute is always lang's Less phrase with
// the Past word, in either direction.  The unit word gets an "s" when the magnitude is more than
// one.
//
// If words is given, its last element replaces lang's Future and Past words.
func Describe(ref, target *dinstant.Instant, lang dlang.Pack, words ...dlang.Direction) string {
	dir := lang.Relative.Direction
	if len(words) > 0 {
		dir = words[len(words)-1]
	}

	diff := floorDiv(target.EpochMillis()-ref.EpochMillis(), 1000)
	abs := diff
	if abs < 0 {
		abs = -abs
	}
	future := diff > 0

	n, word, ok := magnitude(abs, future, lang.Relative)
	if !ok {
		return join(lang.Relative.Less, dir.Past)
	}
	if n > 1 {
		word += "s"
	}
	if future {
		return join(dir.Future, strconv.FormatInt(n, 10), word)
	}
	return join(strconv.FormatInt(n, 10), word, dir.Past)
}

func magnitude(abs int64, future bool, r dlang.Relative) (int64, string, bool) {
	if future && abs >= elasticYear {
		return abs / elasticYear, r.Year, true
	}
	for _, u := range units {
		if abs >= u.seconds {
			return abs / u.seconds, u.word(r), true
		}
	}
	return 0, "", false
}

// Between is Describe for two time.Times.
func Between(ref, target time.Time, lang dlang.Pack) string {
	return Describe(dinstant.FromTime(ref), dinstant.FromTime(target), lang)
}

// join joins the parts with single spaces, dropping empty parts and collapsing any runs of
// whitespace inside them.
func join(parts ...string) string {
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
