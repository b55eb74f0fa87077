// SPDX-License-Identifier: Unlicense OR MIT

// Package logger builds the log/slog logger used by the command line
// tool.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"go.trai.ch/zerr"
)

// ErrInvalidLevel is returned for unknown level names.
var ErrInvalidLevel = zerr.New("invalid log level")

// Options select the handler of a logger.
type Options struct {
	// Level is debug, info, warn or error. Empty means info.
	Level string
	// JSON selects JSON output instead of text.
	JSON bool
}

// ParseLevel parses a level name.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, zerr.With(zerr.Wrap(ErrInvalidLevel, "parse level"), "level", s)
	}
	return l, nil
}

// New returns a logger writing to w, or to standard error if w is nil.
func New(w io.Writer, opts Options) (*slog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	ho := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if opts.JSON {
		h = slog.NewJSONHandler(w, ho)
	} else {
		h = slog.NewTextHandler(w, ho)
	}
	return slog.New(h), nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
