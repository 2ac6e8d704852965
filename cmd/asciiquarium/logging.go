package main

import (
	"log/slog"
	"os"
	"path/filepath"
)

const (
	logFileName = "asciiquarium.log"
	maxLogSize  = 10 << 20 // rotate to .old past 10 MiB
)

// setupLogging routes slog to dir/asciiquarium.log when debug is set and discards it otherwise
// Returns the open log file for the caller to close, nil when logging is off
func setupLogging(debug bool, dir string) *os.File {
	if !debug {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		// Failed rotation just keeps appending
		_ = os.Rename(path, path+".old")
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	slog.Info("logging started", "pid", os.Getpid())
	return f
}
