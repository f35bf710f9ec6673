package engine

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the structured logger every engine instance threads
// through its lifetime. UCI forbids writing anything but protocol lines to
// stdout, so engine logs go to stderr; levelName follows zerolog's names
// ("debug", "info", "warn", "error"), defaulting to "info" on a bad value.
func NewLogger(levelName string, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// init pins zerolog's time field format once, matching the rest of the
// pack's convention of RFC3339 log timestamps.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
