// Package logging builds the zerolog loggers used across pkgcatalog.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Supported output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config selects level, format and destination of log output.
type Config struct {
	Level  string
	Format string
	File   string // empty logs to Output
	Output io.Writer
}

// Result is a configured logger plus the file it writes to, if any.
type Result struct {
	Logger   zerolog.Logger
	FilePath string
	file     *os.File
}

// Close releases the log file, if one was opened.
func (r *Result) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// New builds a logger from cfg. An unparseable level falls back to info.
// If the log file cannot be opened the logger writes to cfg.Output instead
// and the error is returned alongside the usable logger.
func New(cfg Config) (*Result, error) {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	result := &Result{}
	var openErr error
	if cfg.File != "" {
		f, err := openLogFile(cfg.File)
		if err != nil {
			openErr = fmt.Errorf("opening log file %s: %w", cfg.File, err)
		} else {
			result.file = f
			result.FilePath = cfg.File
			out = f
		}
	}

	var w io.Writer = out
	if cfg.Format != FormatJSON && result.file == nil {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	result.Logger = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return result, openErr
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
}

// ComponentLogger returns l tagged with a component name.
func ComponentLogger(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger.
func FromContext(ctx context.Context) zerolog.Logger {
	if ctx == nil {
		return zerolog.Nop()
	}
	return *zerolog.Ctx(ctx)
}

// WithLogger stores l in ctx.
func WithLogger(ctx context.Context, l zerolog.Logger) context.Context {
	return l.WithContext(ctx)
}
