package main

import (
	"io"

	"github.com/rs/zerolog"
)

// zerologAdapter implements calculation.Logger on top of zerolog
type zerologAdapter struct {
	log zerolog.Logger
}

func (a zerologAdapter) Debugf(format string, args ...any) { a.log.Debug().Msgf(format, args...) }
func (a zerologAdapter) Infof(format string, args ...any)  { a.log.Info().Msgf(format, args...) }
func (a zerologAdapter) Warnf(format string, args ...any)  { a.log.Warn().Msgf(format, args...) }
func (a zerologAdapter) Errorf(format string, args ...any) { a.log.Error().Msgf(format, args...) }

// newConsoleLogger writes human-readable log lines to w.
func newConsoleLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
