package dlang_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datawire/depoch/dlang"
	"github.com/datawire/depoch/dlog"
	"github.com/datawire/depoch/dtime"
)

func startWatcher(t *testing.T, reg *dlang.Registry, dir string) *logrustest.Hook {
	t.Helper()
	logger, hook := logrustest.NewNullLogger()
	ctx, cancel := context.WithCancel(dlog.WithLogger(context.Background(), dlog.WrapLogrus(logger)))

	w, err := reg.NewWatcher(dir)
	require.NoError(t, err)
	w.Debounce = 10 * time.Millisecond

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, w.Run(ctx))
	}()
	t.Cleanup(func() {
		cancel()
		wg.Wait()
	})
	return hook
}

func copyPack(t *testing.T, from, to string) {
	t.Helper()
	data, err := os.ReadFile(from)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(to, data, 0o644))
}

func TestWatcherReloads(t *testing.T) {
	reg, err := dlang.NewRegistry(dlang.English())
	require.NoError(t, err)
	dir := t.TempDir()
	startWatcher(t, reg, dir)

	copyPack(t, "testdata/packs/nl.yaml", filepath.Join(dir, "nl.yaml"))
	assert.Eventually(t, func() bool {
		_, err := reg.Lookup("nl")
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)

	copyPack(t, "testdata/packs/de.toml", filepath.Join(dir, "de.toml"))
	assert.Eventually(t, func() bool {
		_, err := reg.Lookup("de")
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"de", "en", "nl"}, reg.Keys())
}

func TestWatcherKeepsPacksOnBrokenFile(t *testing.T) {
	reg, err := dlang.NewRegistry(dlang.English())
	require.NoError(t, err)
	dir := t.TempDir()
	hook := startWatcher(t, reg, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	copyPack(t, "testdata/broken/xx.yml", filepath.Join(dir, "de.yml"))
	assert.Eventually(t, func() bool {
		for _, entry := range hook.AllEntries() {
			if strings.Contains(entry.Message, "keeping the loaded language packs") {
				return true
			}
		}
		return false
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"en"}, reg.Keys())
}

func TestNewWatcherMissingDir(t *testing.T) {
	reg, err := dlang.NewRegistry()
	require.NoError(t, err)
	_, err = reg.NewWatcher(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestWatcherDebounceFollowsClock(t *testing.T) {
	reg, err := dlang.NewRegistry(dlang.English())
	require.NoError(t, err)
	dir := t.TempDir()

	logger, hook := logrustest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	fc := dtime.NewFakeClock(time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC))
	ctx := dtime.WithClock(context.Background(), fc)
	ctx, cancel := context.WithCancel(dlog.WithLogger(ctx, dlog.WrapLogrus(logger)))

	w, err := reg.NewWatcher(dir)
	require.NoError(t, err)
	w.Debounce = time.Hour

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, w.Run(ctx))
	}()
	defer func() {
		cancel()
		wg.Wait()
	}()

	copyPack(t, "testdata/packs/nl.yaml", filepath.Join(dir, "nl.yaml"))
	assert.Eventually(t, func() bool {
		for _, entry := range hook.AllEntries() {
			if strings.Contains(entry.Message, "nl.yaml") {
				return true
			}
		}
		return false
	}, 5*time.Second, 10*time.Millisecond)

	// No fake time has passed, so the reload is still pending however long we wait.
	time.Sleep(50 * time.Millisecond)
	_, err = reg.Lookup("nl")
	assert.ErrorIs(t, err, dlang.ErrUnknownLanguage)

	assert.Eventually(t, func() bool {
		fc.Step(time.Hour)
		_, err := reg.Lookup("nl")
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)
}
