package bigbigint

// This file provides the logging seam for the engine. It abstracts the
// underlying logging implementation behind a small interface so library
// consumers can plug in their own backend; a zerolog adapter is supplied and
// the default is a no-op.

import (
	"io"

	"github.com/rs/zerolog"
)

// Field is a structured logging key/value pair.
type Field struct {
	Key   string
	Value any
}

// StringField creates a string-valued field.
func StringField(key, value string) Field { return Field{Key: key, Value: value} }

// Int64Field creates an int64-valued field.
func Int64Field(key string, value int64) Field { return Field{Key: key, Value: value} }

// Uint64Field creates a uint64-valued field.
func Uint64Field(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64Field creates a float64-valued field.
func Float64Field(key string, value float64) Field { return Field{Key: key, Value: value} }

// ErrField creates an error-valued field under the conventional "error" key.
func ErrField(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the minimal logging surface the engine emits to. Events are
// metadata only (word counts, requested capacities); magnitudes are never
// formatted.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
}

// nopLogger discards everything. It is the default backend.
type nopLogger struct{}

func (nopLogger) Debug(string, ...Field) {}
func (nopLogger) Info(string, ...Field)  {}
func (nopLogger) Warn(string, ...Field)  {}

// NewNopLogger returns a Logger that discards all events.
func NewNopLogger() Logger { return nopLogger{} }

// ZerologAdapter bridges the Logger interface to a zerolog.Logger.
type ZerologAdapter struct {
	zl zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(zl zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{zl: zl}
}

// NewLogger creates a zerolog-backed Logger writing to w, tagged with a
// component field.
func NewLogger(w io.Writer, component string) Logger {
	zl := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return &ZerologAdapter{zl: zl}
}

// Debug logs at debug level.
func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	a.emit(a.zl.Debug(), msg, fields)
}

// Info logs at info level.
func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	a.emit(a.zl.Info(), msg, fields)
}

// Warn logs at warn level.
func (a *ZerologAdapter) Warn(msg string, fields ...Field) {
	a.emit(a.zl.Warn(), msg, fields)
}

func (a *ZerologAdapter) emit(ev *zerolog.Event, msg string, fields []Field) {
	for _, f := range fields {
		ev = ev.Interface(f.Key, f.Value)
	}
	ev.Msg(msg)
}

// logger is the package-level backend. The engine is a single-threaded
// value abstraction, so installation is expected at setup time, not
// concurrently with arithmetic.
var logger Logger = nopLogger{}

// SetLogger installs a logging backend for engine events (buffer growth,
// rejected division by zero, saturating float conversion). Passing nil
// restores the no-op default.
func SetLogger(l Logger) {
	if l == nil {
		logger = nopLogger{}
		return
	}
	logger = l
}
