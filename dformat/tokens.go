package dformat

import (
	"context"
	"fmt"
	"strings"

	"github.com/datawire/depoch/dinstant"
	"github.com/datawire/depoch/dlang"
	"github.com/datawire/depoch/dlog"
)

func num(get func(*dinstant.Instant) int) TokenFunc {
	return func(_ context.Context, in *dinstant.Instant, _ dlang.Pack) Value {
		return Number(int64(get(in)))
	}
}

func pad2(get func(*dinstant.Instant) int) TokenFunc {
	return func(_ context.Context, in *dinstant.Instant, _ dlang.Pack) Value {
		return Padded(int64(get(in)), 2)
	}
}

func text(get func(*dinstant.Instant, dlang.Pack) string) TokenFunc {
	return func(_ context.Context, in *dinstant.Instant, lang dlang.Pack) Value {
		return Text(get(in, lang))
	}
}

// twelveHour maps 13-23 onto 1-11 and leaves every other hour alone, so midnight is 0.
func twelveHour(in *dinstant.Instant) int {
	h := in.Hour()
	if h > 12 {
		h -= 12
	}
	return h
}

func meridiem(in *dinstant.Instant) string {
	if in.Hour() >= 12 {
		return "pm"
	}
	return "am"
}

func leap(in *dinstant.Instant) int {
	if in.IsLeapYear() {
		return 1
	}
	return 0
}

func twoDigitYear(in *dinstant.Instant) int {
	return ((in.Year() % 100) + 100) % 100
}

func fullYear(_ context.Context, in *dinstant.Instant, _ dlang.Pack) Value {
	return Padded(int64(in.Year()), 4)
}

func unixSeconds(_ context.Context, in *dinstant.Instant, _ dlang.Pack) Value {
	ms := in.EpochMillis()
	s := ms / 1000
	if ms%1000 < 0 {
		s--
	}
	return Number(s)
}

func zoneOffset(in *dinstant.Instant, sep string) string {
	offset := in.ZoneOffset() / 60
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return fmt.Sprintf("%s%02d%s%02d", sign, offset/60, sep, offset%60)
}

func rfc1123(_ context.Context, in *dinstant.Instant, _ dlang.Pack) Value {
	return Text(RFC1123(in))
}

var standardTokens = map[string]TokenFunc{
	"a": text(func(in *dinstant.Instant, _ dlang.Pack) string { return meridiem(in) }),
	"A": text(func(in *dinstant.Instant, _ dlang.Pack) string { return strings.ToUpper(meridiem(in)) }),

	"d":    num((*dinstant.Instant).DayOfWeek),
	"dd":   num(func(in *dinstant.Instant) int { return in.DayOfWeek() + 1 }),
	"ddd":  text(func(in *dinstant.Instant, lang dlang.Pack) string { return lang.WeekdayShort(in.DayOfWeek()) }),
	"dddd": text(func(in *dinstant.Instant, lang dlang.Pack) string { return lang.Weekday(in.DayOfWeek()) }),

	"D":   num((*dinstant.Instant).DayOfMonth),
	"DD":  pad2((*dinstant.Instant).DayOfMonth),
	"DDD": num((*dinstant.Instant).DayOfYear),

	"h":  num((*dinstant.Instant).Hour),
	"hh": pad2((*dinstant.Instant).Hour),
	"H":  num(twelveHour),
	"HH": pad2(twelveHour),

	"L": num(leap),

	"mm": pad2((*dinstant.Instant).Minute),

	"M":    num((*dinstant.Instant).Month),
	"MM":   pad2((*dinstant.Instant).Month),
	"MMM":  text(func(in *dinstant.Instant, lang dlang.Pack) string { return lang.MonthShort(in.Month()) }),
	"MMMM": text(func(in *dinstant.Instant, lang dlang.Pack) string { return lang.Month(in.Month()) }),

	"ss": pad2((*dinstant.Instant).Second),
	"u":  num((*dinstant.Instant).Millisecond),
	"U":  unixSeconds,

	"ww": num((*dinstant.Instant).WeekOfYear),

	"YYYY": fullYear,
	"YY":   pad2(twoDigitYear),

	"Z":   text(func(in *dinstant.Instant, _ dlang.Pack) string { return zoneOffset(in, "") }),
	"ZZ":  text(func(in *dinstant.Instant, _ dlang.Pack) string { return zoneOffset(in, ":") }),
	"ZZZ": text(func(in *dinstant.Instant, _ dlang.Pack) string { return in.ZoneAbbrev() }),

	"r": func(ctx context.Context, in *dinstant.Instant, lang dlang.Pack) Value {
		dlog.Warnf(ctx, "dformat: the %q token is deprecated; use dformat.RFC1123 instead", "r")
		return rfc1123(ctx, in, lang)
	},
}

var compactTokens = map[string]TokenFunc{
	"a": text(func(in *dinstant.Instant, _ dlang.Pack) string { return meridiem(in) }),
	"A": text(func(in *dinstant.Instant, _ dlang.Pack) string { return strings.ToUpper(meridiem(in)) }),

	"D": text(func(in *dinstant.Instant, lang dlang.Pack) string { return lang.WeekdayShort(in.DayOfWeek()) }),
	"l": text(func(in *dinstant.Instant, lang dlang.Pack) string { return lang.Weekday(in.DayOfWeek()) }),
	"w": num((*dinstant.Instant).DayOfWeek),

	"d": pad2((*dinstant.Instant).DayOfMonth),
	"j": num((*dinstant.Instant).DayOfMonth),
	"S": text(func(in *dinstant.Instant, _ dlang.Pack) string { return OrdinalSuffix(int64(in.DayOfMonth())) }),
	"z": num(func(in *dinstant.Instant) int { return in.DayOfYear() - 1 }),
	"W": num((*dinstant.Instant).WeekOfYear),

	"F": text(func(in *dinstant.Instant, lang dlang.Pack) string { return lang.Month(in.Month()) }),
	"M": text(func(in *dinstant.Instant, lang dlang.Pack) string { return lang.MonthShort(in.Month()) }),
	"m": pad2((*dinstant.Instant).Month),
	"n": num((*dinstant.Instant).Month),

	"G": num((*dinstant.Instant).Hour),
	"H": pad2((*dinstant.Instant).Hour),
	"g": num(twelveHour),
	"h": pad2(twelveHour),
	"i": pad2((*dinstant.Instant).Minute),
	"s": pad2((*dinstant.Instant).Second),
	"u": num((*dinstant.Instant).Millisecond),
	"U": unixSeconds,

	"L": num(leap),
	"Y": num((*dinstant.Instant).Year),
	"y": pad2(twoDigitYear),

	"r": rfc1123,
}

// StandardTable returns a fresh copy of the tokens understood by Standard.
func StandardTable() Table { return NewTable(standardTokens) }

// CompactTable returns a fresh copy of the tokens understood by Compact.
func CompactTable() Table { return NewTable(compactTokens) }
