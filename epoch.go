// Package depoch is a date value that formats itself through token templates and describes its
// distance from other dates in words.
//
// An Epoch bundles a dinstant.Instant with the dlang.Pack its words come from and the
// dformat.Formatter its templates are read with:
//
//	ep, err := depoch.New(ctx, depoch.At(t), depoch.Lang("en"))
//	if err != nil {
//		return err
//	}
//	s, err := ep.Format(ctx, "dddd, MMMM Do YYYY")
//
// The packages underneath can be used on their own: dinstant for the calendar fields, dformat for
// rendering, drelative for "3 days ago" phrases, and dlang for the language packs.
package depoch

import (
	"context"
	"time"

	"github.com/datawire/depoch/dformat"
	"github.com/datawire/depoch/dinstant"
	"github.com/datawire/depoch/dlang"
	"github.com/datawire/depoch/drelative"
)

// Epoch is a point in time together with a language and a template dialect.  Its Instant may be
// changed with Modify or through Instant(); its language and formatter are fixed at New.
type Epoch struct {
	in        *dinstant.Instant
	lang      dlang.Pack
	formatter dformat.Formatter
}

type settings struct {
	at        func(ctx context.Context, opts ...dinstant.Option) *dinstant.Instant
	langKey   string
	zone      []dinstant.Option
	registry  *dlang.Registry
	formatter dformat.Formatter
}

// Option configures New.
type Option func(*settings)

// At sets the Epoch's time.  Without At or AtMillis, New uses the dtime.Clock on its Context.
func At(t time.Time) Option {
	return func(s *settings) {
		s.at = func(_ context.Context, opts ...dinstant.Option) *dinstant.Instant {
			return dinstant.FromTime(t, opts...)
		}
	}
}

// AtMillis sets the Epoch's time as milliseconds since the Unix epoch.
func AtMillis(ms int64) Option {
	return func(s *settings) {
		s.at = func(_ context.Context, opts ...dinstant.Option) *dinstant.Instant {
			return dinstant.FromEpochMillis(ms, opts...)
		}
	}
}

// Lang selects the language pack by key, such as "en" or "nl".  The default is dlang.DefaultKey.
func Lang(key string) Option {
	return func(s *settings) {
		s.langKey = key
	}
}

// Zone reads the Epoch's fields through a fixed offset of offsetSeconds east of UTC.
func Zone(name string, offsetSeconds int) Option {
	return func(s *settings) {
		s.zone = []dinstant.Option{dinstant.InZone(name, offsetSeconds)}
	}
}

// UsingRegistry looks the language up in r instead of the dlang default registry.
func UsingRegistry(r *dlang.Registry) Option {
	return func(s *settings) {
		s.registry = r
	}
}

// UsingFormatter reads templates with f instead of dformat.Standard.
func UsingFormatter(f dformat.Formatter) Option {
	return func(s *settings) {
		s.formatter = f
	}
}

// New returns an Epoch.  It fails with dlang.ErrUnknownLanguage if the language is not
// registered.
func New(ctx context.Context, opts ...Option) (*Epoch, error) {
	s := settings{
		at:        dinstant.Now,
		langKey:   dlang.DefaultKey,
		registry:  dlang.Default(),
		formatter: dformat.Standard,
	}
	for _, opt := range opts {
		opt(&s)
	}

	lang, err := s.registry.Lookup(s.langKey)
	if err != nil {
		return nil, err
	}
	return &Epoch{
		in:        s.at(ctx, s.zone...),
		lang:      lang,
		formatter: s.formatter,
	}, nil
}

// Instant returns the Epoch's underlying Instant.  Changes made through it are seen by the Epoch.
func (e *Epoch) Instant() *dinstant.Instant { return e.in }

// Lang returns the Epoch's language pack.
func (e *Epoch) Lang() dlang.Pack { return e.lang }

// Time returns the Epoch as a time.Time in its zone.
func (e *Epoch) Time() time.Time { return e.in.Time() }

// Clone returns an independent copy of e.
func (e *Epoch) Clone() *Epoch {
	return &Epoch{in: e.in.Clone(), lang: e.lang, formatter: e.formatter}
}

// Format renders e through layout.
func (e *Epoch) Format(ctx context.Context, layout string) (string, error) {
	return e.formatter.Format(ctx, layout, e.in, e.lang)
}

// From describes e as seen from ref: "3 days ago" when e is three days before ref, "in 3 days"
// when it is three days after.  words, if given, replace the pack's Future and Past words.
func (e *Epoch) From(ref *Epoch, words ...dlang.Direction) string {
	return drelative.Describe(ref.in, e.in, e.lang, words...)
}

// FromNow describes e as seen from the current time of the dtime.Clock on ctx.
func (e *Epoch) FromNow(ctx context.Context, words ...dlang.Direction) string {
	return drelative.Describe(dinstant.Now(ctx), e.in, e.lang, words...)
}

// Modify moves e by a relative expression such as "+3 days", "2 weeks ago", or "next month"; see
// dinstant.ParseDelta.
func (e *Epoch) Modify(expr string) error {
	return e.in.Modify(expr)
}

// RFC1123 renders e as an RFC 1123 date in UTC.
func (e *Epoch) RFC1123() string { return dformat.RFC1123(e.in) }

// RFC2822 is the same as RFC1123.
func (e *Epoch) RFC2822() string { return dformat.RFC2822(e.in) }

// RFC8601 renders e through dformat.RFC8601Layout.
func (e *Epoch) RFC8601(ctx context.Context) (string, error) {
	return dformat.RFC8601(ctx, e.in, e.lang)
}

// String renders e through dformat.RFC8601Layout, ignoring errors.
func (e *Epoch) String() string {
	s, _ := e.RFC8601(context.Background())
	return s
}
