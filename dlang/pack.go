// Package dlang holds the language packs that give dates their words: month and weekday names,
// and the vocabulary of relative-time phrases.
//
// A Pack is plain data.  Its name tables are fixed-length arrays aligned to calendar numbering
// (Months[0] is January, Weekdays[0] is Sunday), so a pack with the wrong number of months cannot
// be expressed at all.  Packs are values: a Registry hands out copies, and nothing a caller does to
// a looked-up Pack affects the registered one.
package dlang

import (
	"github.com/pkg/errors"

	"github.com/datawire/depoch/derror"
)

// Relative is the vocabulary used to describe the distance between two moments.
type Relative struct {
	Minute string
	Hour   string
	Day    string
	Month  string
	Year   string

	// Less is the phrase used for differences under a minute ("less than a minute").
	Less string

	Direction
}

// Direction holds the words that mark a relative phrase as pointing into the future ("in 3 days")
// or the past ("3 days ago").
type Direction struct {
	// Future is placed before the magnitude.
	Future string
	// Past is placed after the unit.
	Past string
}

// Pack is a language pack.
type Pack struct {
	// Key is the BCP 47 tag the pack is registered under, such as "en".
	Key string

	Months        [12]string
	MonthsShort   [12]string
	Weekdays      [7]string
	WeekdaysShort [7]string

	Relative Relative
}

// Validate reports every empty entry in the pack as an *InvalidPackError.  Its Err is a
// derror.MultiError listing all of them.
func (p Pack) Validate() error {
	var errs derror.MultiError
	if p.Key == "" {
		errs = append(errs, errors.New("key is empty"))
	}
	checkAll := func(field string, names []string) {
		for i, name := range names {
			if name == "" {
				errs = append(errs, errors.Errorf("%s[%d] is empty", field, i))
			}
		}
	}
	checkAll("months", p.Months[:])
	checkAll("months_short", p.MonthsShort[:])
	checkAll("weekdays", p.Weekdays[:])
	checkAll("weekdays_short", p.WeekdaysShort[:])
	checkAll("relative", []string{
		p.Relative.Minute,
		p.Relative.Hour,
		p.Relative.Day,
		p.Relative.Month,
		p.Relative.Year,
		p.Relative.Less,
	})
	if err := errs.ErrorOrNil(); err != nil {
		return &InvalidPackError{Key: p.Key, Err: err}
	}
	return nil
}

// Month returns the full name of month m, where 1 is January.
func (p Pack) Month(m int) string { return p.Months[m-1] }

// MonthShort returns the abbreviated name of month m, where 1 is January.
func (p Pack) MonthShort(m int) string { return p.MonthsShort[m-1] }

// Weekday returns the full name of weekday d, where 0 is Sunday.
func (p Pack) Weekday(d int) string { return p.Weekdays[d] }

// WeekdayShort returns the abbreviated name of weekday d, where 0 is Sunday.
func (p Pack) WeekdayShort(d int) string { return p.WeekdaysShort[d] }
