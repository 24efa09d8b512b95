// Package logging configures the global zerolog logger.
//
// Non-interactive commands log human readable lines to stderr. While the
// board owns the terminal, log lines would corrupt the screen, so they go
// to a file (JSON) or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup sets the global level and points the global logger at w.
func Setup(level string, w io.Writer) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return nil
}

// Console returns a stderr writer formatted for people.
func Console() io.Writer {
	return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
}

// Interactive routes logs away from the terminal: to path when set,
// otherwise discarded. The returned close func is never nil.
func Interactive(level, path string) (func() error, error) {
	if path == "" {
		return func() error { return nil }, Setup(level, io.Discard)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return func() error { return nil }, fmt.Errorf("open log file: %w", err)
	}
	if err := Setup(level, f); err != nil {
		_ = f.Close()
		return func() error { return nil }, err
	}
	return f.Close, nil
}
