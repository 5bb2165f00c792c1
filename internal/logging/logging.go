// Package logging builds the charmbracelet loggers shared by the CLI, the
// SSH server and the game core.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// New returns a timestamped logger writing to w. An empty level means info.
func New(w io.Writer, level, prefix string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		lvl = parsed
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// OpenFile returns a logger appending to path, along with the file to close.
// An empty path yields a discarding logger and a nil closer, since the
// alternate screen owns stdout while a game runs.
func OpenFile(path, level, prefix string) (*log.Logger, io.Closer, error) {
	if path == "" {
		if _, err := New(io.Discard, level, prefix); err != nil {
			return nil, nil, err
		}
		return Discard(), nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open log file: %w", err)
	}
	logger, err := New(f, level, prefix)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}
