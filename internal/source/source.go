// Package source reads the raw text of a reading session.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrEmpty is returned when the input holds no readable token.
var ErrEmpty = errors.New("source: nothing to read")

// Stdin is the path that selects standard input.
const Stdin = "-"

// Read returns the text at path, or stdin for "-" or "". Text made only of
// whitespace is reported as ErrEmpty so callers can refuse to start a session.
func Read(path string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == Stdin {
		data, err = io.ReadAll(stdin)
		path = "stdin"
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	text := string(data)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	return text, nil
}

// Join builds the input from command arguments: a single argument naming a
// file (or "-") is read; anything else is treated as inline text.
func Join(args []string, stdin io.Reader) (string, error) {
	if len(args) == 0 {
		return Read(Stdin, stdin)
	}
	if len(args) == 1 {
		if args[0] == Stdin {
			return Read(Stdin, stdin)
		}
		if info, err := os.Stat(args[0]); err == nil && !info.IsDir() {
			return Read(args[0], stdin)
		}
	}
	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		return "", ErrEmpty
	}
	return text, nil
}
