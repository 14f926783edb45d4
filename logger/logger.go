package logger

import "sync/atomic"

// Logger is an interface for handling structured log records at different
// severity levels.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NoOpLogger satisfies the Logger interface and discards all log messages.
type NoOpLogger struct{}

var _ Logger = (*NoOpLogger)(nil)

func (NoOpLogger) Trace(_ string, _ ...any) {}
func (NoOpLogger) Debug(_ string, _ ...any) {}
func (NoOpLogger) Info(_ string, _ ...any)  {}
func (NoOpLogger) Warn(_ string, _ ...any)  {}
func (NoOpLogger) Error(_ string, _ ...any) {}

type holder struct {
	Logger
}

var defaultLogger atomic.Pointer[holder]

func init() {
	defaultLogger.Store(&holder{NoOpLogger{}})
}

// Default returns the package-level logger. Until SetDefault is called it
// discards everything.
func Default() Logger {
	return defaultLogger.Load().Logger
}

// SetDefault makes l the package-level logger. A nil l restores the
// NoOpLogger.
func SetDefault(l Logger) {
	if l == nil {
		l = NoOpLogger{}
	}
	defaultLogger.Store(&holder{l})
}

// Trace logs at the trace level using the default logger.
func Trace(msg string, args ...any) { Default().Trace(msg, args...) }

// Debug logs at the debug level using the default logger.
func Debug(msg string, args ...any) { Default().Debug(msg, args...) }

// Warn logs at the warn level using the default logger.
func Warn(msg string, args ...any) { Default().Warn(msg, args...) }
