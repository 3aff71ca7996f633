package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const DefaultLevel = "WARN"

// ParseLevel maps a case-insensitive level name to a zerolog level. Unknown
// names fall back to warn so diagnostics never interleave with the report.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "DISABLED", "OFF":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

// New returns a console logger writing to out (normally stderr).
func New(out io.Writer, level string) zerolog.Logger {
	w := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	return zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Str("app", "impactke").
		Logger()
}
