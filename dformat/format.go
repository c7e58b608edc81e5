// Package dformat renders an Instant through a token template.
//
// Two template dialects are supported.  Standard templates use runs of a repeated letter as
// tokens ("YYYY-MM-DD", "dddd, MMMM Do") and square brackets to escape literal text
// ("[T]hh:mm").  Compact templates use single-character tokens in the style of
// "D, d M Y H:i:s"; any character that isn't a token is copied through.
//
// Names of months and weekdays come from the dlang.Pack passed to Format, so the same template
// renders in any registered language.
package dformat

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/datawire/depoch/derror"
	"github.com/datawire/depoch/dinstant"
	"github.com/datawire/depoch/dlang"
)

var (
	// ErrEmptyTemplate is returned when asked to render an empty layout.
	ErrEmptyTemplate = errors.New("dformat: empty template")
	// ErrInvalidToken is matched (via errors.Is) by every *InvalidTokenError.
	ErrInvalidToken = errors.New("dformat: invalid format token")
)

// InvalidTokenError reports a token that the Formatter's Table has no entry for, or an ordinal
// suffix on a token that doesn't render a number.
type InvalidTokenError struct {
	Token string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidToken, e.Token)
}

func (e *InvalidTokenError) Is(target error) bool {
	return target == ErrInvalidToken
}

// Dialect selects how a layout is split into literals and tokens.
type Dialect int

const (
	// Bracketed layouts use runs of one repeated word character as tokens and [...] as escapes.
	Bracketed Dialect = iota
	// SingleChar layouts use single characters as tokens; anything not in the Table is literal.
	SingleChar
)

func (d Dialect) String() string {
	switch d {
	case Bracketed:
		return "Bracketed"
	case SingleChar:
		return "SingleChar"
	default:
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
}

// A Formatter pairs a Dialect with the Table of tokens it understands.
type Formatter struct {
	Dialect Dialect
	Table   Table
}

var (
	// Standard is the Bracketed formatter with the StandardTable tokens.
	Standard = Formatter{Dialect: Bracketed, Table: StandardTable()}
	// Compact is the SingleChar formatter with the CompactTable tokens.
	Compact = Formatter{Dialect: SingleChar, Table: CompactTable()}
)

func (f Formatter) scan(layout string) segments {
	if f.Dialect == SingleChar {
		return scanChars(layout, f.Table)
	}
	return scanRuns(layout)
}

// Format renders in through layout.
//
// A Bracketed layout containing a word-character run that isn't in the Table fails with an
// *InvalidTokenError rather than rendering the run literally; escape literal words with [...].
// A panic inside a TokenFunc is recovered and returned as an error.
func (f Formatter) Format(ctx context.Context, layout string, in *dinstant.Instant, lang dlang.Pack) (_ string, err error) {
	if layout == "" {
		return "", ErrEmptyTemplate
	}
	defer func() {
		if perr := derror.PanicToError(recover()); perr != nil {
			err = errors.Wrapf(perr, "dformat: rendering %q", layout)
		}
	}()

	var out strings.Builder
	for _, seg := range f.scan(layout) {
		if seg.kind == segLiteral {
			out.WriteString(seg.text)
			continue
		}
		fn, ok := f.Table.Lookup(seg.text)
		if !ok {
			if seg.ordinal {
				return "", &InvalidTokenError{Token: seg.text + "o"}
			}
			return "", &InvalidTokenError{Token: seg.text}
		}
		val := fn(ctx, in, lang)
		if !seg.ordinal {
			out.WriteString(val.String())
			continue
		}
		n, ok := val.Int()
		if !ok {
			return "", &InvalidTokenError{Token: seg.text + "o"}
		}
		out.WriteString(Ordinal(n))
	}
	return out.String(), nil
}

// Format renders in through a Standard layout.
func Format(ctx context.Context, layout string, in *dinstant.Instant, lang dlang.Pack) (string, error) {
	return Standard.Format(ctx, layout, in, lang)
}

// OrdinalSuffix returns the English ordinal suffix for n: "st", "nd", "rd", or "th".  11, 12,
// and 13 (and 111, 112, ...) take "th".
func OrdinalSuffix(n int64) string {
	if n < 0 {
		n = -n
	}
	if tens := n % 100; tens >= 11 && tens <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// Ordinal returns n followed by its ordinal suffix, such as "1st" or "112th".
func Ordinal(n int64) string {
	return strconv.FormatInt(n, 10) + OrdinalSuffix(n)
}

const rfc1123Layout = "Mon, 02 Jan 2006 15:04:05 GMT"

// RFC1123 renders in in UTC as an RFC 1123 date, such as "Tue, 05 Mar 2024 14:07:09 GMT".  The
// names are always English.
func RFC1123(in *dinstant.Instant) string {
	return in.Time().UTC().Format(rfc1123Layout)
}

// RFC2822 is the same as RFC1123.
func RFC2822(in *dinstant.Instant) string {
	return RFC1123(in)
}

// RFC8601Layout is the Standard layout used by RFC8601.
const RFC8601Layout = "YYYY-MM-DD[T]hh:mm:ss[+0000]"

// RFC8601 renders in through RFC8601Layout, such as "2024-03-05T14:07:09+0000".  The fields are
// read in the Instant's zone, but the offset is always written as "+0000".
func RFC8601(ctx context.Context, in *dinstant.Instant, lang dlang.Pack) (string, error) {
	return Standard.Format(ctx, RFC8601Layout, in, lang)
}
