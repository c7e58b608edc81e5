// Package httpapi exposes formatting, relative descriptions, and date arithmetic as a small JSON
// API.
package httpapi

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"

	"github.com/datawire/depoch"
	"github.com/datawire/depoch/dformat"
	"github.com/datawire/depoch/dlang"
	"github.com/datawire/depoch/dlog"
)

// ErrBadRequest marks errors caused by the request's parameters.
var ErrBadRequest = errors.New("bad request")

// API holds the settings that requests fall back on when they don't override them.
type API struct {
	Registry   *dlang.Registry
	Lang       string
	Layout     string
	ZoneName   string
	ZoneOffset int
}

// Result is the body of a successful response.
type Result struct {
	Result string `json:"result"`
	// Millis is the resulting time, for operations that compute one.
	Millis *int64 `json:"millis,omitempty"`
}

// Langs is the body of a /v1/langs response.
type Langs struct {
	Langs []string `json:"langs"`
}

// Error is the body of a failed response.
type Error struct {
	Error string `json:"error"`
}

// Handler returns the API's routes:
//
//	GET /v1/format?layout=L[&at=RFC3339|&millis=N][&lang=K][&compact=true]
//	GET /v1/from?target=RFC3339[&ref=RFC3339][&lang=K]
//	GET /v1/modify?expr=E[&at=RFC3339|&millis=N][&layout=L][&lang=K]
//	GET /v1/langs
//
// "Now" is read from the request Context's dtime.Clock.
func (a *API) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/format", a.handle(a.format))
		r.Get("/from", a.handle(a.from))
		r.Get("/modify", a.handle(a.modify))
		r.Get("/langs", a.handle(a.langs))
	})
	return r
}

func (a *API) registry() *dlang.Registry {
	if a.Registry == nil {
		return dlang.Default()
	}
	return a.Registry
}

func (a *API) handle(fn func(*http.Request) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := dlog.WithField(r.Context(), "path", r.URL.Path)
		body, err := fn(r.WithContext(ctx))
		code := http.StatusOK
		if err != nil {
			code = statusOf(err)
			body = Error{Error: err.Error()}
			dlog.Debugf(ctx, "httpapi: %d: %v", code, err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		if err := json.NewEncoder(w).Encode(body); err != nil {
			dlog.Errorf(ctx, "httpapi: writing response: %v", err)
		}
	}
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, dlang.ErrUnknownLanguage):
		return http.StatusNotFound
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, dformat.ErrEmptyTemplate),
		errors.Is(err, dformat.ErrInvalidToken):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(err error, param string) error {
	return errors.Wrapf(ErrBadRequest, "%s: %v", param, err)
}

// options builds the depoch.Options for the query q, reading the time from timeParam (or
// "millis") if present.
func (a *API) options(q url.Values, timeParam string) ([]depoch.Option, error) {
	lang := q.Get("lang")
	if lang == "" {
		lang = a.Lang
	}
	if lang == "" {
		lang = dlang.DefaultKey
	}
	opts := []depoch.Option{
		depoch.UsingRegistry(a.registry()),
		depoch.Lang(lang),
		depoch.Zone(a.ZoneName, a.ZoneOffset),
	}
	if q.Get("compact") == "true" {
		opts = append(opts, depoch.UsingFormatter(dformat.Compact))
	}

	switch {
	case q.Get(timeParam) != "":
		t, err := time.Parse(time.RFC3339, q.Get(timeParam))
		if err != nil {
			return nil, badRequest(err, timeParam)
		}
		opts = append(opts, depoch.At(t))
	case timeParam == "at" && q.Get("millis") != "":
		ms, err := strconv.ParseInt(q.Get("millis"), 10, 64)
		if err != nil {
			return nil, badRequest(err, "millis")
		}
		opts = append(opts, depoch.AtMillis(ms))
	}
	return opts, nil
}

func (a *API) layout(q url.Values) string {
	if l := q.Get("layout"); l != "" {
		return l
	}
	if a.Layout != "" {
		return a.Layout
	}
	return dformat.RFC8601Layout
}

func (a *API) format(r *http.Request) (any, error) {
	q := r.URL.Query()
	if q.Get("layout") == "" {
		return nil, badRequest(errors.New("required"), "layout")
	}
	opts, err := a.options(q, "at")
	if err != nil {
		return nil, err
	}
	ep, err := depoch.New(r.Context(), opts...)
	if err != nil {
		return nil, err
	}
	out, err := ep.Format(r.Context(), q.Get("layout"))
	if err != nil {
		return nil, err
	}
	return Result{Result: out}, nil
}

func (a *API) from(r *http.Request) (any, error) {
	q := r.URL.Query()
	if q.Get("target") == "" {
		return nil, badRequest(errors.New("required"), "target")
	}
	targetOpts, err := a.options(q, "target")
	if err != nil {
		return nil, err
	}
	target, err := depoch.New(r.Context(), targetOpts...)
	if err != nil {
		return nil, err
	}
	refOpts, err := a.options(q, "ref")
	if err != nil {
		return nil, err
	}
	ref, err := depoch.New(r.Context(), refOpts...)
	if err != nil {
		return nil, err
	}
	return Result{Result: target.From(ref)}, nil
}

func (a *API) modify(r *http.Request) (any, error) {
	q := r.URL.Query()
	if q.Get("expr") == "" {
		return nil, badRequest(errors.New("required"), "expr")
	}
	opts, err := a.options(q, "at")
	if err != nil {
		return nil, err
	}
	ep, err := depoch.New(r.Context(), opts...)
	if err != nil {
		return nil, err
	}
	if err := ep.Modify(q.Get("expr")); err != nil {
		return nil, badRequest(err, "expr")
	}
	out, err := ep.Format(r.Context(), a.layout(q))
	if err != nil {
		return nil, err
	}
	ms := ep.Instant().EpochMillis()
	return Result{Result: out, Millis: &ms}, nil
}

func (a *API) langs(*http.Request) (any, error) {
	return Langs{Langs: a.registry().Keys()}, nil
}
