package dlog

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var globals = struct { //nolint:gochecknoglobals // this is a place where we really do want a global
	fallbackLogger   Logger
	fallbackLoggerMu sync.RWMutex
}{
	fallbackLogger: WrapLogrus(logrus.New()),
}

func getFallbackLogger() Logger {
	globals.fallbackLoggerMu.RLock()
	defer globals.fallbackLoggerMu.RUnlock()
	return globals.fallbackLogger
}

// SetFallbackLogger sets the Logger that is returned for a context that doesn't have a Logger
// associated with it.  The default fallback Logger is a stock Logrus logger at InfoLevel, which
// is what the depoch CLI reconfigures when --verbose is given.
func SetFallbackLogger(l Logger) {
	globals.fallbackLoggerMu.Lock()
	defer globals.fallbackLoggerMu.Unlock()
	globals.fallbackLogger = l
}
