package log

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"
)

// small wrapper to allow testing Fatal without killing the process
var osExit = os.Exit

// log builds a slog record for the entry and hands it to the bridge handler.
// The PC is captured here so the reported caller is the BaseLogger call site.
func (l *BaseLogger) log(level Level, msg string, fields []Field) {
	if level < l.level {
		return
	}
	var pcs [1]uintptr
	// skip runtime.Callers, log, and the exported wrapper
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), toSlogLevel(level), msg, pcs[0])
	r.AddAttrs(attrsFromMap(l.fields)...)
	r.AddAttrs(attrsFromFieldSlice(fields)...)
	_ = l.slogLogger.Handler().Handle(context.Background(), r)
}

// logArgs is the key-value variant backing the *f methods.
func (l *BaseLogger) logArgs(level Level, msg string, args []interface{}) {
	if level < l.level {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), toSlogLevel(level), msg, pcs[0])
	r.AddAttrs(attrsFromMap(l.fields)...)
	r.AddAttrs(argsToAttrs(args)...)
	_ = l.slogLogger.Handler().Handle(context.Background(), r)
}

// Debug logs a message at DebugLevel.
func (l *BaseLogger) Debug(msg string, fields ...Field) {
	l.log(DebugLevel, msg, fields)
}

// Info logs a message at InfoLevel.
func (l *BaseLogger) Info(msg string, fields ...Field) {
	l.log(InfoLevel, msg, fields)
}

// Warn logs a message at WarnLevel.
func (l *BaseLogger) Warn(msg string, fields ...Field) {
	l.log(WarnLevel, msg, fields)
}

// Error logs a message at ErrorLevel.
func (l *BaseLogger) Error(msg string, fields ...Field) {
	l.log(ErrorLevel, msg, fields)
}

// Fatal logs a message at FatalLevel and exits the process.
func (l *BaseLogger) Fatal(msg string, fields ...Field) {
	l.log(FatalLevel, msg, fields)
	osExit(1)
}

// Debugf logs at DebugLevel with key-value pairs.
func (l *BaseLogger) Debugf(msg string, args ...interface{}) {
	l.logArgs(DebugLevel, msg, args)
}

// Infof logs at InfoLevel with key-value pairs.
func (l *BaseLogger) Infof(msg string, args ...interface{}) {
	l.logArgs(InfoLevel, msg, args)
}

// Warnf logs at WarnLevel with key-value pairs.
func (l *BaseLogger) Warnf(msg string, args ...interface{}) {
	l.logArgs(WarnLevel, msg, args)
}

// Errorf logs at ErrorLevel with key-value pairs.
func (l *BaseLogger) Errorf(msg string, args ...interface{}) {
	l.logArgs(ErrorLevel, msg, args)
}

// Fatalf logs at FatalLevel with key-value pairs and exits the process.
func (l *BaseLogger) Fatalf(msg string, args ...interface{}) {
	l.logArgs(FatalLevel, msg, args)
	osExit(1)
}

// clone returns a copy with its own fields map and a fresh bridge handler
// bound to the copy.
func (l *BaseLogger) clone() *BaseLogger {
	nl := &BaseLogger{
		level:     l.level,
		fields:    make(Fields, len(l.fields)),
		formatter: l.formatter,
		outputs:   l.outputs,
	}
	for k, v := range l.fields {
		nl.fields[k] = v
	}
	nl.slogLogger = slog.New(newBridgeHandler(nl))
	return nl
}

// WithField returns a logger with an additional field.
func (l *BaseLogger) WithField(key string, value interface{}) Logger {
	nl := l.clone()
	nl.fields[key] = value
	return nl
}

// WithFields returns a logger with additional fields.
func (l *BaseLogger) WithFields(fields Fields) Logger {
	nl := l.clone()
	for k, v := range fields {
		nl.fields[k] = v
	}
	return nl
}

// WithError returns a logger with the conventional "error" field set.
func (l *BaseLogger) WithError(err error) Logger {
	if err == nil {
		return l
	}
	return l.WithField("error", err.Error())
}

// With returns a logger with the given fields attached.
func (l *BaseLogger) With(fields ...Field) Logger {
	if len(fields) == 0 {
		return l
	}
	nl := l.clone()
	for _, f := range fields {
		nl.fields[f.Key] = f.Value
	}
	return nl
}

// WithContext returns a logger carrying any logging context found in ctx.
func (l *BaseLogger) WithContext(ctx context.Context) Logger {
	extracted := ContextExtractor(ctx)
	if len(extracted) == 0 {
		return l
	}
	return l.WithFields(extracted)
}

// WithComponent tags the logger with a component name.
func (l *BaseLogger) WithComponent(component string) Logger {
	return l.WithField(ComponentKey, component)
}

// SetLevel sets the minimum log level.
func (l *BaseLogger) SetLevel(level Level) {
	l.level = level
}

// GetLevel returns the current minimum log level.
func (l *BaseLogger) GetLevel() Level {
	return l.level
}
