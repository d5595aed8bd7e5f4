package log

import (
	"fmt"
	stdlog "log"
	"strings"
)

// Config carries the externally tunable logger settings.
type Config struct {
	// Level is the minimum level name: debug, info, warn, error or fatal.
	Level string `json:"level"`
	// Format selects the output encoding: text (default) or json.
	Format string `json:"format"`
}

// ParseLevel converts a level name to a Level. Names are case-insensitive.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	default:
		return InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// ApplyConfig builds a console logger from cfg. A nil cfg yields the default
// logger. Unknown level or format names are reported as errors so callers can
// fall back explicitly.
func ApplyConfig(cfg *Config) (Logger, error) {
	if cfg == nil {
		return NewLogger(), nil
	}
	level := InfoLevel
	if cfg.Level != "" {
		parsed, err := ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		level = parsed
	}
	var formatter Formatter
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "text", "console":
		formatter = &TextFormatter{}
	case "json":
		formatter = &JSONFormatter{}
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}
	return NewLogger(
		WithLevel(level),
		WithFormatter(formatter),
		WithOutput(NewConsoleOutput()),
	), nil
}

// stdLogWriter adapts a Logger to io.Writer for the standard library logger.
type stdLogWriter struct {
	logger Logger
	level  Level
}

func (w *stdLogWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if line == "" {
			continue
		}
		switch w.level {
		case DebugLevel:
			w.logger.Debug(line)
		case WarnLevel:
			w.logger.Warn(line)
		case ErrorLevel, FatalLevel:
			w.logger.Error(line)
		default:
			w.logger.Info(line)
		}
	}
	return len(p), nil
}

// RedirectStdLog routes standard library log output through the given logger
// at InfoLevel. Third-party code that logs via the stdlib shows up in our
// unified format.
func RedirectStdLog(logger Logger) {
	stdlog.SetFlags(0)
	stdlog.SetOutput(&stdLogWriter{logger: logger, level: InfoLevel})
}

// ToStdLogger returns a *log.Logger that forwards to the given logger at the
// given level. Useful for libraries that accept a stdlib logger.
func ToStdLogger(logger Logger, level Level) *stdlog.Logger {
	return stdlog.New(&stdLogWriter{logger: logger, level: level}, "", 0)
}
