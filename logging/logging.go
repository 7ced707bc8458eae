// Package logging configures the process-wide slog logger used by the
// wlrefine tools.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrUnknownFormat is returned by Init for a format other than text or json.
var ErrUnknownFormat = errors.New("logging: unknown format")

// Supported handler formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ParseLevel accepts debug, info, warn and error in any case.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("logging: level %q: %w", s, err)
	}
	return l, nil
}

// Init installs a slog default writing to w (os.Stderr when nil) at level
// in format, and returns it.
func Init(level, format string, w io.Writer) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	switch strings.ToLower(format) {
	case FormatText, "":
		handler = slog.NewTextHandler(w, opts)
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, nil
}

// New returns the default logger tagged with component.
func New(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}
