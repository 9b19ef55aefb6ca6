package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const logDir = "debug"

// initLogger sends logs to stderr and to debug/go-service.log.
// The returned file must be closed by the caller.
func initLogger(verbose bool) (io.Closer, error) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.Logger = zerolog.New(console).With().Timestamp().Logger()
		return io.NopCloser(nil), fmt.Errorf("failed to create log dir: %w", err)
	}
	logFile, err := os.OpenFile(filepath.Join(logDir, "go-service.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Logger = zerolog.New(console).With().Timestamp().Logger()
		return io.NopCloser(nil), fmt.Errorf("failed to open log file: %w", err)
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(console, logFile)).With().Timestamp().Logger()
	return logFile, nil
}
