package core

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// MaxLogBytes is the size at which the log file is rotated on startup.
const MaxLogBytes = 1024 * 1024

// RotateLogIfNeeded checks if the log file at path exceeds maxBytes.
// If it does, it renames the file to path + ".old" (overwriting any previous backup).
func RotateLogIfNeeded(path string, maxBytes int64) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		// If we can't stat, we can't check size.
		return nil
	}

	if info.Size() > maxBytes {
		oldPath := path + ".old"
		// Best effort remove old backup
		_ = os.Remove(oldPath)

		if err := os.Rename(path, oldPath); err != nil {
			return fmt.Errorf("rotate log %s: %w", path, err)
		}
	}
	return nil
}

// NewLogger builds a JSON logger appending to path. verbose enables debug.
func NewLogger(path string, verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// SetupLogging rotates the log at path, opens a logger on it and installs it
// as the global zap logger. The returned func restores the previous globals
// and flushes the log.
func SetupLogging(path string, verbose bool) (func(), error) {
	rotateErr := RotateLogIfNeeded(path, MaxLogBytes)
	logger, err := NewLogger(path, verbose)
	if err != nil {
		return func() {}, err
	}
	undo := zap.ReplaceGlobals(logger)
	if rotateErr != nil {
		logger.Warn("log rotation failed", zap.Error(rotateErr))
	}
	return func() {
		_ = logger.Sync()
		undo()
	}, nil
}
