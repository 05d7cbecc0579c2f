package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Field represents a structured logging field as a key/value pair.
type Field struct {
	Key   string
	Value any
}

// String creates a Field holding a string value.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates a Field holding an int value.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 creates a Field holding a uint64 value.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a Field holding a float64 value.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Dur creates a Field holding a time.Duration value.
func Dur(key string, value time.Duration) Field { return Field{Key: key, Value: value} }

// Err creates a Field holding an error under the conventional "error" key.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err}
}

// Logger is the logging interface used across the application. It decouples
// components from the concrete backend so production code can log through
// zerolog while tests substitute lightweight implementations.
type Logger interface {
	// Info logs an informational message with optional structured fields.
	Info(msg string, fields ...Field)
	// Error logs an error message with the triggering error and optional fields.
	Error(msg string, err error, fields ...Field)
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...Field)
	// Printf logs a formatted message, for call sites ported from the std log package.
	Printf(format string, args ...any)
	// Println logs its arguments, for call sites ported from the std log package.
	Println(args ...any)
}

// ZerologAdapter adapts a zerolog.Logger to the Logger interface.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewDefaultLogger returns the standard production logger: zerolog writing to
// stderr with timestamps and the application component field.
func NewDefaultLogger() *ZerologAdapter {
	return NewLogger(os.Stderr, "repbench")
}

// NewLogger builds a zerolog-backed Logger writing to w, tagged with the given
// component name.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	zl := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return &ZerologAdapter{logger: zl}
}

// Info logs at info level.
func (l *ZerologAdapter) Info(msg string, fields ...Field) {
	applyFields(l.logger.Info(), fields).Msg(msg)
}

// Error logs at error level, attaching err when non-nil.
func (l *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	ev := l.logger.Error()
	if err != nil {
		ev = ev.Err(err)
	}
	applyFields(ev, fields).Msg(msg)
}

// Debug logs at debug level.
func (l *ZerologAdapter) Debug(msg string, fields ...Field) {
	applyFields(l.logger.Debug(), fields).Msg(msg)
}

// Printf logs a formatted message through zerolog's std-log compatibility layer.
func (l *ZerologAdapter) Printf(format string, args ...any) {
	l.logger.Printf(format, args...)
}

// Println logs its arguments through zerolog's std-log compatibility layer.
func (l *ZerologAdapter) Println(args ...any) {
	l.logger.Print(args...)
}

// applyFields attaches typed fields to a zerolog event.
func applyFields(ev *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			ev = ev.Str(f.Key, v)
		case int:
			ev = ev.Int(f.Key, v)
		case int64:
			ev = ev.Int64(f.Key, v)
		case uint64:
			ev = ev.Uint64(f.Key, v)
		case float64:
			ev = ev.Float64(f.Key, v)
		case bool:
			ev = ev.Bool(f.Key, v)
		case time.Duration:
			ev = ev.Dur(f.Key, v)
		case error:
			ev = ev.AnErr(f.Key, v)
		default:
			ev = ev.Interface(f.Key, v)
		}
	}
	return ev
}

// StdLoggerAdapter adapts the standard library's log.Logger to the Logger
// interface. It is used as a plain-text fallback and in tests.
type StdLoggerAdapter struct {
	logger *log.Logger
}

// NewStdLoggerAdapter wraps a std log.Logger.
func NewStdLoggerAdapter(logger *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{logger: logger}
}

// Info logs an informational message with an [INFO] prefix.
func (l *StdLoggerAdapter) Info(msg string, fields ...Field) {
	l.logger.Printf("[INFO] %s%s", msg, formatFields(fields))
}

// Error logs an error message with an [ERROR] prefix, appending err as a field.
func (l *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	if err != nil {
		fields = append(fields, Err(err))
	}
	l.logger.Printf("[ERROR] %s%s", msg, formatFields(fields))
}

// Debug logs a debug message with a [DEBUG] prefix.
func (l *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	l.logger.Printf("[DEBUG] %s%s", msg, formatFields(fields))
}

// Printf logs a formatted message without a level prefix.
func (l *StdLoggerAdapter) Printf(format string, args ...any) {
	l.logger.Printf(format, args...)
}

// Println logs its arguments without a level prefix.
func (l *StdLoggerAdapter) Println(args ...any) {
	l.logger.Println(args...)
}

// formatFields renders fields as " key=value" pairs for plain-text output.
func formatFields(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}
	var b strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
	}
	return b.String()
}
