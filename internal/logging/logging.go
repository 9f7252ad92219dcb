// Package logging sets up the file logger; the TUI owns stdout so nothing
// is ever logged there.
package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// FileName is the log file created inside the log directory
const FileName = "remark.log"

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Init writes logs to dir/remark.log in text format. Debug records are kept
// only when debug is set. The returned closer flushes the file.
func Init(dir string, debug bool) (io.Closer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logPath := filepath.Join(dir, FileName)
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	install(file, debug)
	return file, nil
}

// Discard drops every record; used when the log file cannot be opened
func Discard() {
	install(io.Discard, false)
}

func install(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags)
}
