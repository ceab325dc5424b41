package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

var (
	errUnknownLogLevel  = errors.New("unknown log level")
	errUnknownLogFormat = errors.New("unknown log format")
)

// ParseLevel accepts the levels exposed on the command line.
func ParseLevel(level string) (zerolog.Level, error) {
	switch level {
	case zerolog.LevelDebugValue:
		return zerolog.DebugLevel, nil
	case zerolog.LevelInfoValue:
		return zerolog.InfoLevel, nil
	case zerolog.LevelWarnValue:
		return zerolog.WarnLevel, nil
	case zerolog.LevelErrorValue:
		return zerolog.ErrorLevel, nil
	}
	return zerolog.NoLevel, fmt.Errorf("log level %q: %w", level, errUnknownLogLevel)
}

// New builds a logger writing to w. Text output goes through a console
// writer, debug level adds the caller and pid to every entry.
func New(w io.Writer, level, format string) (zerolog.Logger, error) {
	logLevel, err := ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, err
	}

	var formatWriter io.Writer
	switch format {
	case FormatJSON:
		formatWriter = w
	case FormatText:
		formatWriter = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	default:
		return zerolog.Logger{}, fmt.Errorf("log format %q: %w", format, errUnknownLogFormat)
	}

	ctx := zerolog.New(formatWriter).
		Level(logLevel).
		With().
		Timestamp()
	if logLevel == zerolog.DebugLevel {
		ctx = ctx.Caller().Int("pid", os.Getpid())
	}
	return ctx.Logger(), nil
}

// SetDefaultContextLogger installs a stderr logger as the one returned by
// log.Ctx for contexts that carry none.
func SetDefaultContextLogger(level, format string) (zerolog.Logger, error) {
	l, err := New(os.Stderr, level, format)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("get logger: %w", err)
	}
	zerolog.DefaultContextLogger = &l
	return l, nil
}
