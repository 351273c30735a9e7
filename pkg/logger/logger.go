// Package logger defines the logging contract used across the library, so
// the backend can be swapped without touching callers.
package logger

type Level int8

const (
	Disabled   Level = -1   // Disabled suppresses all output.
	TraceLevel Level = iota // TraceLevel is for fine-grained tracing.
	DebugLevel              // DebugLevel is for debugging information.
	InfoLevel               // InfoLevel is for informational messages.
	WarnLevel               // WarnLevel is for warning messages.
	ErrorLevel              // ErrorLevel is for error messages.
	FatalLevel              // FatalLevel logs and then exits the program.
	PanicLevel              // PanicLevel logs and then panics.
	NoLevel                 // NoLevel leaves the entry unleveled.
)

type Logger interface {
	// Derive a logger from this one with extra context attached.
	WithField(key string, value any) Logger
	WithFields(fields map[string]any) Logger
	WithError(err error) Logger

	Print(args ...any)
	Trace(args ...any)
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Fatal(args ...any)
	Panic(args ...any)

	Printf(format string, args ...any)
	Tracef(format string, args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
	Panicf(format string, args ...any)

	SetLevel(level Level)
	GetLevel() Level
}
