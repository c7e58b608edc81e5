// Package dlog implements a generic logger facade that travels with a Context.
//
// Code that formats or compares dates rarely has anything to say, but when it does (a deprecated
// format token, a CLI diagnostic) it should say it through whatever logger the caller configured,
// not through a process-global console.  So: the caller attaches a Logger to the Context with
// WithLogger, and everything downstream logs with the package-level convenience functions
// (dlog.Warnf(ctx, ...), dlog.Debugln(ctx, ...), and friends).  A Context without a Logger falls
// back to a Logrus logger; see SetFallbackLogger.
package dlog

import (
	"context"
	"log"
)

// Logger is a generic logging interface that most loggers implement, so that consumers don't need
// to care about the actual log implementation.
//
// Note that unlike logrus.FieldLogger, it does not include Fatal or Panic logging options.  Do
// proper error handling!  Return those errors!
type Logger interface {
	// Helper marks the calling function as a logging helper function.  This way loggers can
	// report the line that the log came from, while excluding functions that are part of the
	// logging infrastructure.
	//
	// Some backends may ignore calls to Helper.
	Helper()

	// WithField returns a copy of the logger with the structured-logging field key=value
	// associated with it.  Future calls to .Log will include that field.
	WithField(key string, value interface{}) Logger

	// StdLogger returns a stdlib *log.Logger that writes to this Logger at the specified
	// loglevel; for use with external libraries that demand a stdlib *log.Logger.
	StdLogger(LogLevel) *log.Logger

	// Log actually logs a message.
	Log(level LogLevel, msg string)

	// MaxLevel returns the most verbose LogLevel that this logger will emit.
	MaxLevel() LogLevel
}

// OptimizedLogger is a Logger that takes on the formatting work itself, rather than having dlog
// call fmt.Sprint on its behalf.
type OptimizedLogger interface {
	Logger
	UnformattedLog(level LogLevel, args ...interface{})
	UnformattedLogln(level LogLevel, args ...interface{})
	UnformattedLogf(level LogLevel, format string, args ...interface{})
}

// LogLevel is an abstracted common log-level type for Logger.StdLogger().
type LogLevel uint32

const (
	// LogLevelError is for errors that should definitely be noted.
	LogLevelError LogLevel = iota
	// LogLevelWarn is for non-critical entries that deserve eyes.
	LogLevelWarn
	// LogLevelInfo is for general operational entries about what's going on inside the
	// application.
	LogLevelInfo
	// LogLevelDebug is for debugging.  Very verbose logging.
	LogLevelDebug
	// LogLevelTrace is for extreme debugging.  Even finer-grained informational events than
	// the Debug.
	LogLevelTrace
)

type loggerContextKey struct{}

// WithLogger returns a copy of ctx with logger associated with it, for future calls to
// {Trace,Debug,Info,Warn,Error}{,f,ln}(ctx, ...) and GetLogger(ctx).
func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// WithField is a convenience wrapper for
//
//	WithLogger(ctx, GetLogger(ctx).WithField(key, value))
func WithField(ctx context.Context, key string, value interface{}) context.Context {
	return WithLogger(ctx, GetLogger(ctx).WithField(key, value))
}

// GetLogger returns the Logger associated with ctx.  If ctx has no Logger associated with it, the
// fallback Logger is returned.  This function always returns a usable Logger, unless the fallback
// Logger has been set to nil.
func GetLogger(ctx context.Context) Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerContextKey{}).(Logger); ok {
			return logger
		}
	}
	return getFallbackLogger()
}

// StdLogger returns a stdlib *log.Logger that uses the Logger associated with ctx and logs at the
// specified loglevel.
func StdLogger(ctx context.Context, level LogLevel) *log.Logger {
	return GetLogger(ctx).StdLogger(level)
}

// MaxLevel returns the most verbose LogLevel that the Logger associated with ctx will emit.
func MaxLevel(ctx context.Context) LogLevel {
	return GetLogger(ctx).MaxLevel()
}
