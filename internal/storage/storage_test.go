package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flist/internal/domain"
)

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) LogWarn(message string) {
	l.warnings = append(l.warnings, message)
}

type failingFile struct {
	writeErr error
	closeErr error
	closed   bool
}

func (f *failingFile) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return len(p), nil
}

func (f *failingFile) Close() error {
	f.closed = true
	return f.closeErr
}

func TestFileStorage_Write(t *testing.T) {
	t.Run("creates missing parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "target", "nested", "file-list.json")

		err := NewFileStorage(nil).Write(path, []byte("[]"))
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})

	t.Run("truncates an existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		require.NoError(t, os.WriteFile(path, []byte("much longer old content"), 0644))

		require.NoError(t, NewFileStorage(nil).Write(path, []byte("new")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("parent is a file", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

		err := NewFileStorage(nil).Write(filepath.Join(blocker, "out.json"), []byte("[]"))
		var ioErr *domain.IOError
		require.ErrorAs(t, err, &ioErr)
		assert.Equal(t, "create output dir", ioErr.Op)
	})

	t.Run("destination is a directory", func(t *testing.T) {
		dir := t.TempDir()

		err := NewFileStorage(nil).Write(dir, []byte("[]"))
		var ioErr *domain.IOError
		require.ErrorAs(t, err, &ioErr)
		assert.Equal(t, "create", ioErr.Op)
	})

	t.Run("write failure closes the file and is returned", func(t *testing.T) {
		file := &failingFile{writeErr: errors.New("disk full")}
		s := NewFileStorage(nil)
		s.create = func(string) (io.WriteCloser, error) { return file, nil }

		err := s.Write(filepath.Join(t.TempDir(), "out.json"), []byte("[]"))
		var ioErr *domain.IOError
		require.ErrorAs(t, err, &ioErr)
		assert.Equal(t, "write", ioErr.Op)
		assert.True(t, file.closed)
	})

	t.Run("close failure is logged, not returned", func(t *testing.T) {
		logger := &recordingLogger{}
		file := &failingFile{closeErr: errors.New("flush failed")}
		s := NewFileStorage(logger)
		s.create = func(string) (io.WriteCloser, error) { return file, nil }

		err := s.Write(filepath.Join(t.TempDir(), "out.json"), []byte("[]"))
		require.NoError(t, err)
		require.Len(t, logger.warnings, 1)
		assert.Contains(t, logger.warnings[0], "flush failed")
	})
}
