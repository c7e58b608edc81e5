package dhttp

import (
	"context"
	"net"
	"net/http"
	"sync"
)

type connKey struct{}

// hijackTracker remembers connections that a handler hijacked (h2c upgrades, mostly) for as long
// as that handler is running, so that they can be closed when the server is.
type hijackTracker struct {
	handlers sync.WaitGroup

	mu    sync.Mutex
	conns map[net.Conn]struct{}
}

// trackHijacked wraps server's ConnState, ConnContext, and Handler.  It must be called after the
// Handler is final.
func trackHijacked(server *http.Server) *hijackTracker {
	t := &hijackTracker{conns: make(map[net.Conn]struct{})}

	nextState := server.ConnState
	server.ConnState = func(c net.Conn, state http.ConnState) {
		if nextState != nil {
			nextState(c, state)
		}
		if state == http.StateHijacked {
			t.mu.Lock()
			t.conns[c] = struct{}{}
			t.mu.Unlock()
		}
	}

	nextContext := server.ConnContext
	server.ConnContext = func(ctx context.Context, c net.Conn) context.Context {
		if nextContext != nil {
			ctx = nextContext(ctx, c)
		}
		return context.WithValue(ctx, connKey{}, c)
	}

	next := server.Handler
	server.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.handlers.Add(1)
		defer t.handlers.Done()
		defer t.forget(r.Context())
		next.ServeHTTP(w, r)
	})

	return t
}

func (t *hijackTracker) forget(ctx context.Context) {
	c, ok := ctx.Value(connKey{}).(net.Conn)
	if !ok {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.conns, c)
}

func (t *hijackTracker) wait() {
	t.handlers.Wait()
}

func (t *hijackTracker) closeAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for c := range t.conns {
		_ = c.Close()
		delete(t.conns, c)
	}
}
