// Package logging builds the slog logger used across thrones, backed by
// charmbracelet/log and an optional rolling log file.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/kerbaras/thrones/pkg/config"
)

// New returns a logger for cfg. When file logging is disabled, records go to
// fallback instead; pass io.Discard when the terminal belongs to the UI.
// The returned closer releases the log file and is never nil.
func New(cfg config.LogConfig, fallback io.Writer) (*slog.Logger, io.Closer) {
	var w io.Writer = fallback
	var closer io.Closer = nopCloser{}

	if cfg.File.Enabled {
		rolling := &lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    cfg.File.MaxSizeMB,
			MaxBackups: cfg.File.MaxBackups,
			MaxAge:     cfg.File.MaxAgeDays,
			Compress:   cfg.File.Compress,
		}
		w, closer = rolling, rolling
	}

	return NewWithWriter(cfg, w), closer
}

// NewWithWriter returns a redacting logger writing to w.
func NewWithWriter(cfg config.LogConfig, w io.Writer) *slog.Logger {
	handler := log.NewWithOptions(w, log.Options{
		Level:           parseLevel(cfg.Level),
		Formatter:       parseFormatter(cfg.Format),
		ReportTimestamp: true,
		Prefix:          "thrones",
	})

	return slog.New(NewRedactHandler(handler))
}

func parseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

func parseFormatter(format string) log.Formatter {
	switch strings.ToLower(format) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
