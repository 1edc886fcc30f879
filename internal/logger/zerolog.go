package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// ZerologAdapter satisfies Logger on top of a zerolog.Logger. The component
// name always lands in the "component" field so console and JSON output can
// be filtered the same way.
type ZerologAdapter struct {
	zl zerolog.Logger
}

// NewZerolog writes timestamped JSON lines to w, dropping anything below level
func NewZerolog(w io.Writer, level zerolog.Level) *ZerologAdapter {
	return &ZerologAdapter{
		zl: zerolog.New(w).Level(level).With().Timestamp().Logger(),
	}
}

// NewConsoleLogger is NewZerolog behind zerolog's human readable writer on stderr
func NewConsoleLogger(level zerolog.Level) *ZerologAdapter {
	return NewZerolog(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}, level)
}

// New builds the application logger: JSON lines on stderr when useJSON is
// set, the console writer otherwise.
func New(levelName string, useJSON bool) *ZerologAdapter {
	level := ParseLevel(levelName)
	if useJSON {
		return NewZerolog(os.Stderr, level)
	}
	return NewConsoleLogger(level)
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	emit(z.zl.Debug(), component, message, fields)
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	emit(z.zl.Info(), component, message, fields)
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	emit(z.zl.Warn(), component, message, fields)
}

// Error logs message at error level with err attached under the "error" key
func (z *ZerologAdapter) Error(component, message string, err error, fields map[string]interface{}) {
	emit(z.zl.Error().Err(err), component, message, fields)
}

// emit is a no-op for events below the configured level: zerolog hands back
// a nil event and every method on it returns immediately.
func emit(e *zerolog.Event, component, message string, fields map[string]interface{}) {
	if e == nil {
		return
	}
	e.Str("component", component).Fields(fields).Msg(message)
}
