package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New builds the application logger. Log lines go to stderr, and also to
// logFilePath when it is non-empty. The returned func closes the log
// file and must be called on shutdown.
func New(logFilePath, logLevelStr string) (*slog.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}
	if logFilePath != "" {
		logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, nil, err
		}
		w = io.MultiWriter(os.Stderr, logFile)
		closeFn = func() { _ = logFile.Close() }
	}

	var level slog.Level
	switch strings.ToUpper(logLevelStr) {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO", "":
		level = slog.LevelInfo
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler), closeFn, nil
}
