package dlog

import (
	"context"
	"fmt"
)

func sprintln(args ...interface{}) string {
	// Trim the trailing newline; what we care about is that spaces are added in between
	// arguments, not that there's a trailing newline.  See also: logrus.Entry.sprintlnn
	msg := fmt.Sprintln(args...)
	return msg[:len(msg)-1]
}

func logAt(ctx context.Context, level LogLevel, args ...interface{}) {
	l := GetLogger(ctx)
	l.Helper()
	if level > l.MaxLevel() {
		return
	}
	if ol, ok := l.(OptimizedLogger); ok {
		ol.UnformattedLog(level, args...)
		return
	}
	l.Log(level, fmt.Sprint(args...))
}

func logAtln(ctx context.Context, level LogLevel, args ...interface{}) {
	l := GetLogger(ctx)
	l.Helper()
	if level > l.MaxLevel() {
		return
	}
	if ol, ok := l.(OptimizedLogger); ok {
		ol.UnformattedLogln(level, args...)
		return
	}
	l.Log(level, sprintln(args...))
}

func logAtf(ctx context.Context, level LogLevel, format string, args ...interface{}) {
	l := GetLogger(ctx)
	l.Helper()
	if level > l.MaxLevel() {
		return
	}
	if ol, ok := l.(OptimizedLogger); ok {
		ol.UnformattedLogf(level, format, args...)
		return
	}
	l.Log(level, fmt.Sprintf(format, args...))
}

// Error logs at LogLevelError, formatting the arguments like fmt.Sprint.
func Error(ctx context.Context, args ...interface{}) { logAt(ctx, LogLevelError, args...) }

// Errorln logs at LogLevelError, formatting the arguments like fmt.Sprintln.
func Errorln(ctx context.Context, args ...interface{}) { logAtln(ctx, LogLevelError, args...) }

// Errorf logs at LogLevelError, formatting the arguments like fmt.Sprintf.
func Errorf(ctx context.Context, format string, args ...interface{}) {
	logAtf(ctx, LogLevelError, format, args...)
}

// Warn logs at LogLevelWarn, formatting the arguments like fmt.Sprint.
func Warn(ctx context.Context, args ...interface{}) { logAt(ctx, LogLevelWarn, args...) }

// Warnln logs at LogLevelWarn, formatting the arguments like fmt.Sprintln.
func Warnln(ctx context.Context, args ...interface{}) { logAtln(ctx, LogLevelWarn, args...) }

// Warnf logs at LogLevelWarn, formatting the arguments like fmt.Sprintf.
func Warnf(ctx context.Context, format string, args ...interface{}) {
	logAtf(ctx, LogLevelWarn, format, args...)
}

// Info logs at LogLevelInfo, formatting the arguments like fmt.Sprint.
func Info(ctx context.Context, args ...interface{}) { logAt(ctx, LogLevelInfo, args...) }

// Infoln logs at LogLevelInfo, formatting the arguments like fmt.Sprintln.
func Infoln(ctx context.Context, args ...interface{}) { logAtln(ctx, LogLevelInfo, args...) }

// Infof logs at LogLevelInfo, formatting the arguments like fmt.Sprintf.
func Infof(ctx context.Context, format string, args ...interface{}) {
	logAtf(ctx, LogLevelInfo, format, args...)
}

// Debug logs at LogLevelDebug, formatting the arguments like fmt.Sprint.
func Debug(ctx context.Context, args ...interface{}) { logAt(ctx, LogLevelDebug, args...) }

// Debugln logs at LogLevelDebug, formatting the arguments like fmt.Sprintln.
func Debugln(ctx context.Context, args ...interface{}) { logAtln(ctx, LogLevelDebug, args...) }

// Debugf logs at LogLevelDebug, formatting the arguments like fmt.Sprintf.
func Debugf(ctx context.Context, format string, args ...interface{}) {
	logAtf(ctx, LogLevelDebug, format, args...)
}

// Trace logs at LogLevelTrace, formatting the arguments like fmt.Sprint.
func Trace(ctx context.Context, args ...interface{}) { logAt(ctx, LogLevelTrace, args...) }

// Traceln logs at LogLevelTrace, formatting the arguments like fmt.Sprintln.
func Traceln(ctx context.Context, args ...interface{}) { logAtln(ctx, LogLevelTrace, args...) }

// Tracef logs at LogLevelTrace, formatting the arguments like fmt.Sprintf.
func Tracef(ctx context.Context, format string, args ...interface{}) {
	logAtf(ctx, LogLevelTrace, format, args...)
}
