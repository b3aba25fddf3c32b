// Package logger is the zerolog wrapper shared by the style packages and the CLI.
//
// A nil *Logger is valid and discards everything, so library types can hold an
// optional logger without guarding each call.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	// Level is a zerolog level name. Empty means info.
	Level string
	// Verbose forces debug level regardless of Level.
	Verbose       bool
	HumanReadable bool
	Writer        io.Writer
}

// Logger carries a zerolog logger plus the fields attached by Named and WithField.
type Logger struct {
	base zerolog.Logger
}

// New creates a Logger from opts.
func New(opts Options) (*Logger, error) {
	level, err := parseLevel(opts)
	if err != nil {
		return nil, err
	}

	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}
	if opts.HumanReadable {
		writer = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.Kitchen}
	}

	return &Logger{base: zerolog.New(writer).Level(level).With().Timestamp().Logger()}, nil
}

func parseLevel(opts Options) (zerolog.Level, error) {
	if opts.Verbose {
		return zerolog.DebugLevel, nil
	}
	if opts.Level == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(opts.Level))
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// Named tags every record with the emitting component.
func (l *Logger) Named(component string) *Logger {
	return l.WithField("component", component)
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	ctx := l.base.With()
	for key, value := range fields {
		ctx = ctx.Interface(key, value)
	}
	return &Logger{base: ctx.Logger()}
}

// WithField is WithFields for a single key.
func (l *Logger) WithField(key string, value any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Interface(key, value).Logger()}
}

// DebugEnabled reports whether debug records would be written. Callers use it
// to skip timing work on the hot path.
func (l *Logger) DebugEnabled() bool {
	return l != nil && l.base.Debug().Enabled()
}

// Measure writes a debug record with the elapsed time of a create or resolve call.
func (l *Logger) Measure(name string, elapsed time.Duration) {
	if l == nil {
		return
	}
	l.base.Debug().Str("measure", name).Dur("duration", elapsed).Msg("measure")
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

// Info writes an informational log entry.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Msg(msg)
}

// Error writes err under the "error" key when it is non-nil.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
