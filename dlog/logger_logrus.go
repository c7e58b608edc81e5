package dlog

import (
	"io"
	"log"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type logrusLogger interface {
	WithField(key string, value interface{}) *logrus.Entry
	WriterLevel(level logrus.Level) *io.PipeWriter
	Log(level logrus.Level, args ...interface{})
	Logln(level logrus.Level, args ...interface{})
	Logf(level logrus.Level, format string, args ...interface{})
}

type logrusWrapper struct {
	logrusLogger
}

var _ OptimizedLogger = logrusWrapper{}

var dlogLevel2logrusLevel = [5]logrus.Level{
	logrus.ErrorLevel,
	logrus.WarnLevel,
	logrus.InfoLevel,
	logrus.DebugLevel,
	logrus.TraceLevel,
}

func toLogrus(level LogLevel) logrus.Level {
	if level > LogLevelTrace {
		panic(errors.Errorf("invalid LogLevel: %d", level))
	}
	return dlogLevel2logrusLevel[level]
}

// Helper does nothing--we use a Logrus Hook instead (see below).
func (l logrusWrapper) Helper() {}

func (l logrusWrapper) WithField(key string, value interface{}) Logger {
	return logrusWrapper{l.logrusLogger.WithField(key, value)}
}

func (l logrusWrapper) StdLogger(level LogLevel) *log.Logger {
	return log.New(l.logrusLogger.WriterLevel(toLogrus(level)), "", 0)
}

func (l logrusWrapper) Log(level LogLevel, msg string) {
	l.logrusLogger.Log(toLogrus(level), msg)
}

func (l logrusWrapper) root() *logrus.Logger {
	ll := l.logrusLogger
	if le, ok := ll.(*logrus.Entry); ok {
		return le.Logger
	}
	return ll.(*logrus.Logger)
}

func (l logrusWrapper) MaxLevel() LogLevel {
	logrusLevel := l.root().GetLevel()
	for i, lvl := range dlogLevel2logrusLevel {
		if lvl == logrusLevel {
			return LogLevel(i)
		}
	}
	// Panic and Fatal are less verbose than anything dlog emits.
	return LogLevelError
}

func (l logrusWrapper) UnformattedLog(level LogLevel, args ...interface{}) {
	l.logrusLogger.Log(toLogrus(level), args...)
}

func (l logrusWrapper) UnformattedLogln(level LogLevel, args ...interface{}) {
	l.logrusLogger.Logln(toLogrus(level), args...)
}

func (l logrusWrapper) UnformattedLogf(level LogLevel, format string, args ...interface{}) {
	l.logrusLogger.Logf(toLogrus(level), format, args...)
}

// WrapLogrus converts a logrus *Logger into a generic Logger.
//
// You should only really ever call WrapLogrus from the initial process set up (i.e. directly
// inside your 'main()' function, or at the top of a test), and you should pass the result directly
// to WithLogger.
func WrapLogrus(in *logrus.Logger) Logger {
	in.AddHook(logrusFixCallerHook{})
	return logrusWrapper{in}
}

type logrusFixCallerHook struct{}

func (logrusFixCallerHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (logrusFixCallerHook) Fire(entry *logrus.Entry) error {
	if entry.Caller != nil && strings.HasPrefix(entry.Caller.Function, dlogPackage+".") {
		entry.Caller = getCaller()
	}
	return nil
}

const (
	dlogPackage            = "github.com/datawire/depoch/dlog"
	logrusPackage          = "github.com/sirupsen/logrus"
	maximumCallerDepth int = 25
	minimumCallerDepth int = 2 // runtime.Callers + getCaller
)

// Duplicate of logrus.getCaller() because Logrus doesn't have the kind if skip/.Helper()
// functionality that testing.TB has.
//
// https://github.com/sirupsen/logrus/issues/972
func getCaller() *runtime.Frame {
	pcs := make([]uintptr, maximumCallerDepth)
	depth := runtime.Callers(minimumCallerDepth, pcs)
	frames := runtime.CallersFrames(pcs[:depth])

	for f, again := frames.Next(); again; f, again = frames.Next() {
		if strings.HasPrefix(f.Function, logrusPackage+".") ||
			strings.HasPrefix(f.Function, dlogPackage+".") {
			continue
		}
		return &f //nolint:scopelint
	}

	return nil
}
