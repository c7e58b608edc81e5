package dlang

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// Registry maps language keys to packs.  It is safe for concurrent use.
//
// Keys are BCP 47 tags and are compared in canonical form, so "EN", "en" and "eN" all name the
// same pack.  Looking up a regional tag such as "en-GB" finds a pack registered under exactly
// that tag first, and otherwise the pack for its base language.  Anything else is
// ErrUnknownLanguage; a registry never substitutes a different language.
type Registry struct {
	mu    sync.RWMutex
	packs map[string]Pack
}

// NewRegistry returns a Registry holding the given packs.
func NewRegistry(packs ...Pack) (*Registry, error) {
	r := &Registry{packs: make(map[string]Pack, len(packs))}
	for _, p := range packs {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func canonical(key string) (language.Tag, error) {
	tag, err := language.Parse(key)
	if err != nil {
		return language.Und, errors.Wrapf(ErrUnknownLanguage, "%q", key)
	}
	return tag, nil
}

// Register validates p and adds it to the registry, replacing any pack already registered under
// the same canonical key.  The stored pack's Key is rewritten to canonical form.
func (r *Registry) Register(p Pack) error {
	if err := p.Validate(); err != nil {
		return err
	}
	tag, err := language.Parse(p.Key)
	if err != nil {
		return errors.Wrapf(ErrInvalidPack, "key %q: %v", p.Key, err)
	}
	p.Key = tag.String()

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.packs == nil {
		r.packs = make(map[string]Pack)
	}
	r.packs[p.Key] = p
	return nil
}

// Lookup returns a copy of the pack registered for key.
func (r *Registry) Lookup(key string) (Pack, error) {
	tag, err := canonical(key)
	if err != nil {
		return Pack{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.packs[tag.String()]; ok {
		return p, nil
	}
	if base, conf := tag.Base(); conf == language.Exact {
		if p, ok := r.packs[base.String()]; ok {
			return p, nil
		}
	}
	return Pack{}, errors.Wrapf(ErrUnknownLanguage, "%q", key)
}

// Keys returns the canonical keys of every registered pack, sorted.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.packs))
	for k := range r.packs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var defaultRegistry = &Registry{ //nolint:gochecknoglobals // the process-wide set of packs
	packs: map[string]Pack{DefaultKey: English()},
}

// Default returns the process-wide registry, which starts out holding only English.
func Default() *Registry {
	return defaultRegistry
}

// Lookup is Default().Lookup(key).
func Lookup(key string) (Pack, error) {
	return defaultRegistry.Lookup(key)
}

// Register is Default().Register(p).
func Register(p Pack) error {
	return defaultRegistry.Register(p)
}
