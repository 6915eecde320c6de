// Package util provides common utilities including logging setup and
// file system locations.
package util

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

// Log formats understood by NewLogHandler.
const (
	LogFormatText   = "text"
	LogFormatJSON   = "json"
	LogFormatLogfmt = "logfmt"
)

// NewLogHandler builds a slog handler backed by charmbracelet/log.
func NewLogHandler(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, err := charmlog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	var formatter charmlog.Formatter
	switch strings.ToLower(strings.TrimSpace(format)) {
	case LogFormatText, "":
		formatter = charmlog.TextFormatter
	case LogFormatJSON:
		formatter = charmlog.JSONFormatter
	case LogFormatLogfmt:
		formatter = charmlog.LogfmtFormatter
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           lvl,
		Formatter:       formatter,
		ReportTimestamp: true,
	}), nil
}

// OpenLogFile opens (appending) a log file, creating its directory.
func OpenLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// LogError logs an error with context if it is non-nil.
func LogError(logger *slog.Logger, context string, err error) {
	if err != nil {
		logger.Error(context, "err", err)
	}
}
