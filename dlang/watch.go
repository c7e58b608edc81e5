package dlang

import (
	"context"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/datawire/depoch/dlog"
	"github.com/datawire/depoch/dtime"
)

// DefaultDebounce is how long a Watcher waits for a directory to go quiet before reloading it.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads a directory of pack files into a Registry whenever one of them changes.
type Watcher struct {
	// Debounce coalesces a burst of events into a single reload.  Zero means DefaultDebounce.
	// It is measured on the dtime.Clock of the Context passed to Run.
	Debounce time.Duration

	dir string
	reg *Registry
	fw  *fsnotify.Watcher
}

// NewWatcher starts watching dir.  Events are not acted on until Run is called, but none that
// happen after NewWatcher returns are lost.
func (r *Registry) NewWatcher(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "dlang: watching language packs")
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, errors.Wrapf(err, "dlang: watching %q", dir)
	}
	return &Watcher{dir: dir, reg: r, fw: fw}, nil
}

// Run processes events until ctx is done, then releases the watch.
//
// A reload parses the whole directory before registering anything, so a file with a mistake in
// it is logged and leaves every previously registered pack in place.  Deleting a file does not
// unregister its pack.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fw.Close()

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	var fire <-chan time.Time
	stopFire := func() {}
	defer func() { stopFire() }()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if !IsPackFile(event.Name) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				dlog.Debugf(ctx, "dlang: %v", event)
				stopFire()
				var fireCtx context.Context
				fireCtx, stopFire = context.WithCancel(ctx)
				fire = dtime.After(fireCtx, debounce)
			}
		case <-fire:
			fire = nil
			w.reload(ctx)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			dlog.Warnf(ctx, "dlang: watching %q: %v", w.dir, err)
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	scratch := &Registry{}
	if err := scratch.LoadFS(os.DirFS(w.dir)); err != nil {
		dlog.Warnf(ctx, "dlang: keeping the loaded language packs: %v", err)
		return
	}

	scratch.mu.RLock()
	defer scratch.mu.RUnlock()
	for _, p := range scratch.packs {
		if err := w.reg.Register(p); err != nil {
			dlog.Warnf(ctx, "dlang: %v", err)
		}
	}
	dlog.Infof(ctx, "dlang: reloaded %d language packs from %q", len(scratch.packs), w.dir)
}
