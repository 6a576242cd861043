// Package logging builds zerolog loggers from textual level and format settings.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatText    = "text"
	FormatJSON    = "json"
)

// Writer returns output wrapped for the given format
func Writer(output io.Writer, format string) (io.Writer, error) {
	switch strings.ToLower(format) {
	case "", FormatConsole:
		return zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}, nil
	case FormatText:
		return zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339, NoColor: true}, nil
	case FormatJSON:
		return output, nil
	}
	return nil, fmt.Errorf("unsupported log format: %v", format)
}

// New creates a logger, empty level defaults to info
func New(output io.Writer, level, format string) (zerolog.Logger, error) {
	writer, err := Writer(output, format)
	if err != nil {
		return zerolog.Nop(), err
	}
	lvl := zerolog.InfoLevel
	if level != "" {
		if lvl, err = zerolog.ParseLevel(strings.ToLower(level)); err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level: %w", err)
		}
	}
	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger(), nil
}
