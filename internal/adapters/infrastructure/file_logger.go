package infrastructure

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"weatherdash.app/internal/ports"
)

// FileLoggerAdapter writes provider traffic as JSON lines to an append-only file
type FileLoggerAdapter struct {
	file   *os.File
	logger *slog.Logger
	mutex  sync.Mutex
	closed bool
}

// NewFileLoggerAdapter opens (or creates) logPath for appending
func NewFileLoggerAdapter(logPath string) (*FileLoggerAdapter, error) {
	if logPath == "" {
		return nil, fmt.Errorf("log file path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return &FileLoggerAdapter{
		file:   file,
		logger: slog.New(handler),
	}, nil
}

func (f *FileLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	f.write(slog.LevelDebug, msg, fields)
}

func (f *FileLoggerAdapter) Info(msg string, fields ...ports.Field) {
	f.write(slog.LevelInfo, msg, fields)
}

func (f *FileLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	f.write(slog.LevelWarn, msg, fields)
}

func (f *FileLoggerAdapter) Error(msg string, fields ...ports.Field) {
	f.write(slog.LevelError, msg, fields)
}

// Close flushes and closes the underlying file. Later writes are dropped.
func (f *FileLoggerAdapter) Close() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true
	return f.file.Close()
}

func (f *FileLoggerAdapter) write(level slog.Level, msg string, fields []ports.Field) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.closed {
		return
	}
	switch level {
	case slog.LevelDebug:
		f.logger.Debug(msg, fieldArgs(fields)...)
	case slog.LevelWarn:
		f.logger.Warn(msg, fieldArgs(fields)...)
	case slog.LevelError:
		f.logger.Error(msg, fieldArgs(fields)...)
	default:
		f.logger.Info(msg, fieldArgs(fields)...)
	}
}
