package logger

import (
	"log/slog"
	"os"
)

// Log defaults to the slog default logger so package code can log before
// Init runs (and in tests that never call it).
var Log = slog.Default()

func Init() {
	// JSON handler so log lines stay machine-parseable in production
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}
