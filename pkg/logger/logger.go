// Package logger wraps zerolog for the launcher's diagnostic output.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

type Logger struct {
	logger *zerolog.Logger
}

// New returns a console logger writing to w. Only warnings and errors are
// emitted unless verbose is set.
func New(w io.Writer, verbose bool) *Logger {
	if w == nil {
		w = os.Stderr
	}
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: !colorEnabled(w)}
	logger := zerolog.New(output).Level(level).With().Timestamp().Str("s", "launcher").Logger()
	return &Logger{logger: &logger}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	logger := zerolog.Nop()
	return &Logger{logger: &logger}
}

// With creates a child logger with the field added to its context.
func (l *Logger) With() zerolog.Context { return l.logger.With() }

// Extend adds some additional context to the existing logger.
func (l *Logger) Extend(ctx zerolog.Context) *Logger {
	logger := ctx.Logger()
	return &Logger{logger: &logger}
}

// Debug starts a new message with debug level.
// You must call Msg on the returned event in order to send the event.
func (l *Logger) Debug() *zerolog.Event { return l.logger.Debug() }

// Warn starts a new message with warn level.
func (l *Logger) Warn() *zerolog.Event { return l.logger.Warn() }

// GetLevel returns the minimum level of l.
func (l *Logger) GetLevel() zerolog.Level { return l.logger.GetLevel() }

func colorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && f == os.Stderr && stderrSupportsColor()
}
