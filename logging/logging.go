package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// FileName is the active log file inside the log directory
	FileName = "touchplay.log"
	// MaxSize is the size above which the previous log is rotated at startup
	MaxSize = 10 * 1024 * 1024
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup opens <dir>/touchplay.log for append and returns a logger writing to it
// The terminal owns stdout and stderr, so logs only ever go to the file
// A file larger than MaxSize is renamed to touchplay.log.1 first
// When disabled the logger discards everything
func Setup(dir, level string, enabled bool) (zerolog.Logger, io.Closer, error) {
	if !enabled {
		return zerolog.Nop(), nopCloser{}, nil
	}

	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := rotate(path); err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log file: %w", err)
	}

	log := zerolog.New(f).Level(lvl).With().Timestamp().Logger()
	return log, f, nil
}

// ParseLevel accepts zerolog level names; empty means info
func ParseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", level, err)
	}
	return lvl, nil
}

func rotate(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() <= MaxSize {
		return nil
	}
	if err := os.Rename(path, path+".1"); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}

// Console returns a human-readable logger on w, used by the headless runner for --verbose
func Console(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).Level(level).With().Timestamp().Logger()
}
