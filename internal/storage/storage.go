package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"flist/internal/domain"
)

// Storage persists rendered output
type Storage interface {
	Write(path string, content []byte) error
}

// Logger receives cleanup failures that do not change the outcome of a write
type Logger interface {
	LogWarn(message string)
}

// FileStorage writes output files, creating parent directories as needed
type FileStorage struct {
	logger Logger
	create func(name string) (io.WriteCloser, error)
}

// NewFileStorage returns a Storage backed by the local filesystem
func NewFileStorage(logger Logger) *FileStorage {
	return &FileStorage{
		logger: logger,
		create: func(name string) (io.WriteCloser, error) {
			return os.Create(name)
		},
	}
}

// Write creates (or truncates) path and writes content to it.
// Every failure is returned as a *domain.IOError. A close failure is only
// logged.
func (s *FileStorage) Write(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &domain.IOError{Op: "create output dir", Path: filepath.Dir(path), Err: err}
	}

	f, err := s.create(path)
	if err != nil {
		return &domain.IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if err := f.Close(); err != nil && s.logger != nil {
			s.logger.LogWarn(fmt.Sprintf("close %s: %v", path, err))
		}
	}()

	if _, err := f.Write(content); err != nil {
		return &domain.IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
