// Package logging configures the process-wide slog default logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Format selects the log output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat parses s into a Format. An empty string defaults to text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown log format %q (expected text or json)", s)
	}
}

// NewHandler returns a slog handler for the given format and level, writing
// to w. The text handler is human-oriented; "trace" enables caller reporting
// on both formats.
func NewHandler(format Format, logLevel string, w io.Writer) slog.Handler {
	if format == FormatJSON {
		return newJSONHandler(logLevel, w)
	}
	return newTextHandler(logLevel, w)
}

func newTextHandler(logLevel string, w io.Writer) slog.Handler {
	if w == nil {
		w = os.Stderr
	}

	reportCaller := false
	reportTimestamp := false
	lvl := log.InfoLevel
	switch strings.ToLower(logLevel) {
	case "trace":
		reportCaller = true
		reportTimestamp = true
		lvl = log.DebugLevel
	case "debug":
		reportTimestamp = true
		lvl = log.DebugLevel
	case "info":
		lvl = log.InfoLevel
	case "warn", "warning":
		lvl = log.WarnLevel
	case "error":
		lvl = log.ErrorLevel
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: reportTimestamp,
		ReportCaller:    reportCaller,
		Level:           lvl,
	})
}

func newJSONHandler(logLevel string, w io.Writer) slog.Handler {
	if w == nil {
		w = os.Stdout
	}

	reportCaller := false
	var level slog.Level
	switch strings.ToLower(logLevel) {
	case "trace":
		reportCaller = true
		level = slog.LevelDebug
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: reportCaller,
	})
}

// Setup resolves the output destination, builds a handler for the requested
// format and level, and installs it as the slog default. The returned logger
// is the same one slog.Default() now yields.
func Setup(format, logLevel, output string) (*slog.Logger, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}

	w, err := resolveWriter(f, output)
	if err != nil {
		return nil, err
	}

	logger := slog.New(NewHandler(f, logLevel, w))
	slog.SetDefault(logger)
	return logger, nil
}

// resolveWriter maps an output spec to a writer: "stdout", "stderr", a
// "file://" URL, or a plain file path. Empty picks the format's natural
// default stream. File output appends, creating parent directories as
// needed.
func resolveWriter(format Format, output string) (io.Writer, error) {
	switch {
	case output == "":
		if format == FormatJSON {
			return os.Stdout, nil
		}
		return os.Stderr, nil
	case output == "stdout":
		return os.Stdout, nil
	case output == "stderr":
		return os.Stderr, nil
	case strings.HasPrefix(output, "file://"):
		return openLogFile(strings.TrimPrefix(output, "file://"))
	case strings.Contains(output, "://"):
		return nil, fmt.Errorf("unsupported log output %q", output)
	default:
		return openLogFile(output)
	}
}

func openLogFile(path string) (io.Writer, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating log directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	return f, nil
}
