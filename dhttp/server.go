// Package dhttp runs an HTTP server for exactly as long as a Context is alive.
//
// net/http.Server ties a running server's lifecycle to the *http.Server object and its Shutdown
// and Close methods.  ServerConfig ties it to the Context passed to Serve instead: canceling the
// Context starts a graceful shutdown, and Serve returns once the shutdown is complete.
//
// Cleartext HTTP/2 ("h2c") is enabled by default.  Plain golang.org/x/net/http2/h2c leaves h2c
// connections alone when the server shuts down, because net/http sees them as hijacked; this
// package sends them a GOAWAY on shutdown and closes any that are still open once the shutdown
// grace period ends.
package dhttp

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/datawire/depoch/dlog"
)

// ServerConfig is the configuration of a server; the server itself only exists for the duration of
// a Serve call.  Serve copies what it needs, so mutating a ServerConfig does not affect a running
// server.
type ServerConfig struct {
	// Handler serves every request.  Each request's Context carries the values of the Context
	// passed to Serve, but is not canceled when that Context is.
	Handler http.Handler

	ReadHeaderTimeout time.Duration

	// ShutdownTimeout bounds how long in-flight requests get to finish once the Context is
	// canceled.  Zero means they get as long as they need.
	ShutdownTimeout time.Duration

	// ErrorLog receives errors from accepting connections and from handlers.  If nil, they are
	// logged through dlog at LogLevelError on the Context passed to Serve.
	ErrorLog *log.Logger

	// DisableHTTP2 turns off cleartext HTTP/2.
	DisableHTTP2 bool

	// HTTP2Config is the HTTP/2 configuration; nil means the x/net defaults.
	HTTP2Config *http2.Server
}

// Serve accepts connections on ln until ctx is canceled, then shuts down gracefully.  Serve always
// closes ln.  It returns nil after a shutdown that ctx asked for, and the error otherwise.
func (sc *ServerConfig) Serve(ctx context.Context, ln net.Listener) error {
	handler := sc.Handler
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	server := &http.Server{
		ReadHeaderTimeout: sc.ReadHeaderTimeout,
		ErrorLog:          sc.ErrorLog,
		// Requests keep the Context's values, but must survive its cancellation long enough
		// to finish during the shutdown grace period.
		BaseContext: func(net.Listener) context.Context {
			return context.WithoutCancel(ctx)
		},
	}
	if server.ErrorLog == nil {
		server.ErrorLog = dlog.StdLogger(ctx, dlog.LogLevelError)
	}

	if !sc.DisableHTTP2 {
		h2s := &http2.Server{}
		if sc.HTTP2Config != nil {
			cfg := *sc.HTTP2Config
			h2s = &cfg
		}
		// ConfigureServer registers h2s with the server's shutdown, so that the h2c
		// connections it serves get a GOAWAY when Shutdown is called.
		if err := http2.ConfigureServer(server, h2s); err != nil {
			_ = ln.Close()
			return errors.Wrap(err, "dhttp: configuring HTTP/2")
		}
		handler = h2c.NewHandler(handler, h2s)
	}
	server.Handler = handler

	hijacked := trackHijacked(server)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(ln)
	}()

	var err error
	shutdownCtx := context.Background()
	select {
	case err = <-serveErr:
		// The server failed on its own; skip the grace period.
		var cancel context.CancelFunc
		shutdownCtx, cancel = context.WithCancel(shutdownCtx)
		cancel()
	case <-ctx.Done():
		dlog.Debugf(ctx, "dhttp: shutting down %s", ln.Addr())
		if sc.ShutdownTimeout > 0 {
			var cancel context.CancelFunc
			shutdownCtx, cancel = context.WithTimeout(shutdownCtx, sc.ShutdownTimeout)
			defer cancel()
		}
		err = server.Shutdown(shutdownCtx)
		<-serveErr
	}

	// Shutdown does not wait for hijacked connections; give them the rest of the grace period.
	handlersDone := make(chan struct{})
	go func() {
		hijacked.wait()
		close(handlersDone)
	}()
	select {
	case <-handlersDone:
	case <-shutdownCtx.Done():
	}
	_ = server.Close()
	hijacked.closeAll()
	<-handlersDone

	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	return err
}

// ListenAndServe is like Serve, but listens on the TCP address addr itself.  An empty addr means
// ":http".
func (sc *ServerConfig) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = ":http"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "dhttp: listening on %q", addr)
	}
	dlog.Infof(ctx, "dhttp: listening on %s", ln.Addr())
	return sc.Serve(ctx, ln)
}
