package dinstant

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const msPerWeek = 604800000

// Delta is a signed calendar adjustment parsed from a phrase such as "+3 days" or "last week".
type Delta struct {
	Amount int
	// Unit is one of UnitDay, UnitWeek, UnitMonth, or UnitYear.
	Unit Unit
}

// Unit is the unit of a Delta.
type Unit string

const (
	UnitDay   Unit = "day"
	UnitWeek  Unit = "week"
	UnitMonth Unit = "month"
	UnitYear  Unit = "year"
)

var deltaRx = regexp.MustCompile(`(?i)^\s*([+-]?\d+|next|last)\s+(day|week|month|year)s?(?:\s+(ago))?\s*$`)

// ParseDelta parses a relative expression:
//
//	<amount> <unit>[s] [ago]
//
// where amount is a signed or unsigned integer ("3" means "+3"), "next" (+1), or "last" (-1),
// and unit is day, week, month, or year.  "ago" negates a numeric amount; "last" is -1 with or
// without it, and so is "next ... ago".  Matching is case-insensitive.
func ParseDelta(expr string) (Delta, error) {
	m := deltaRx.FindStringSubmatch(expr)
	if m == nil {
		return Delta{}, errors.Wrapf(ErrInvalidExpression, "%q", expr)
	}
	amount, unit, ago := strings.ToLower(m[1]), Unit(strings.ToLower(m[2])), m[3] != ""

	var n int
	switch amount {
	case "next":
		n = 1
		if ago {
			n = -1
		}
	case "last":
		n = -1
	default:
		var err error
		n, err = strconv.Atoi(amount)
		if err != nil {
			return Delta{}, errors.Wrapf(ErrInvalidExpression, "%q: %v", expr, err)
		}
		if ago {
			n = -n
		}
	}
	return Delta{Amount: n, Unit: unit}, nil
}

// Apply moves in by d.  Weeks are a flat 604,800,000 ms per week; days, months, and years use
// calendar arithmetic, so "+1 month" from January 31 lands in early March, and "+1 year" from
// February 29 lands on March 1.
func (in *Instant) Apply(d Delta) error {
	switch d.Unit {
	case UnitWeek:
		in.AddMillis(msPerWeek * int64(d.Amount))
		return nil
	case UnitDay:
		return in.Add(Day, d.Amount)
	case UnitMonth:
		return in.Add(Month, d.Amount)
	case UnitYear:
		return in.Add(Year, d.Amount)
	}
	return errors.Wrapf(ErrInvalidExpression, "unknown unit %q", string(d.Unit))
}

// Modify parses expr with ParseDelta and applies it.
func (in *Instant) Modify(expr string) error {
	d, err := ParseDelta(expr)
	if err != nil {
		return err
	}
	return in.Apply(d)
}
