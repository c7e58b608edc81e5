package dformat

import (
	"context"
	"sort"

	"github.com/datawire/depoch/dinstant"
	"github.com/datawire/depoch/dlang"
)

// TokenFunc renders a single token for in, using lang for any words.
type TokenFunc func(ctx context.Context, in *dinstant.Instant, lang dlang.Pack) Value

// Table maps token keys to the functions that render them.  A Table is immutable; With returns
// a modified copy.
type Table struct {
	tokens map[string]TokenFunc
}

// NewTable returns a Table holding a copy of tokens.
func NewTable(tokens map[string]TokenFunc) Table {
	t := Table{tokens: make(map[string]TokenFunc, len(tokens))}
	for k, fn := range tokens {
		t.tokens[k] = fn
	}
	return t
}

// With returns a copy of t in which key renders with fn, replacing any existing entry.
//
// A SingleChar Formatter only ever looks up one-byte keys, so a longer key added to its Table is
// never rendered.
func (t Table) With(key string, fn TokenFunc) Table {
	ret := NewTable(t.tokens)
	ret.tokens[key] = fn
	return ret
}

// Lookup returns the function for key.
func (t Table) Lookup(key string) (TokenFunc, bool) {
	fn, ok := t.tokens[key]
	return fn, ok
}

// Keys returns every token key in t, sorted.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t.tokens))
	for k := range t.tokens {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
