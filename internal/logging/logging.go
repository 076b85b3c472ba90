// Package logging builds the process logger. The terminal belongs to the
// reader UI, so records go to a file and, optionally, stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

// stderr is replaced in tests.
var stderr io.Writer = os.Stderr

type Options struct {
	// File receives text records. Empty disables file logging.
	File string
	// Level is one of debug, info, warn, error.
	Level string
	// Stderr adds a second handler on standard error.
	Stderr bool
}

// New returns the logger and a close function for the log file.
func New(opts Options) (*slog.Logger, func() error, error) {
	level := new(slog.LevelVar)
	if err := level.UnmarshalText([]byte(strings.ToUpper(orDefault(opts.Level, "info")))); err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", opts.Level, err)
	}

	var (
		writers []io.Writer
		closer  = func() error { return nil }
	)

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, nil, fmt.Errorf("log dir: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, f)
		closer = f.Close
	}
	if opts.Stderr {
		writers = append(writers, stderr)
	}

	return NewWriter(level, writers...), closer, nil
}

// NewWriter fans records out to one text handler per writer. Without writers
// records are discarded.
func NewWriter(level slog.Leveler, writers ...io.Writer) *slog.Logger {
	if len(writers) == 0 {
		return slog.New(slog.DiscardHandler)
	}
	handlers := make([]slog.Handler, 0, len(writers))
	for _, w := range writers {
		handlers = append(handlers, slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(slogmulti.Fanout(handlers...))
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
