package generate

import (
	"os"
	"path/filepath"

	"github.com/tacogips/aiscaffold/internal/debug"
)

// Writer is the filesystem surface the orchestrator depends on.
type Writer interface {
	// WriteFile writes content to a file, creating parent directories as needed.
	WriteFile(path string, content []byte) error

	// CreateDir creates a directory and any necessary parents. Idempotent.
	CreateDir(path string) error

	// Exists checks if a file or directory exists at the given path.
	Exists(path string) bool
}

// FileWriter implements Writer for the real filesystem.
type FileWriter struct{}

// NewFileWriter creates a new FileWriter.
func NewFileWriter() Writer {
	return &FileWriter{}
}

// WriteFile writes content to a file with 0644 permissions.
// Writes atomically using a temporary file and rename.
func (w *FileWriter) WriteFile(path string, content []byte) error {
	debug.Debug("[generate] Writing file: %s (size: %d bytes)", path, len(content))

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := w.CreateDir(dir); err != nil {
			return newGenerateError(WriteFailed, "failed to create parent directory", path, err)
		}
	}

	tempFile := path + ".tmp"
	f, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return newGenerateError(WriteFailed, "failed to create temporary file", path, err)
	}

	_, err = f.Write(content)
	closeErr := f.Close()

	if err != nil {
		_ = os.Remove(tempFile)
		return newGenerateError(WriteFailed, "failed to write file content", path, err)
	}
	if closeErr != nil {
		_ = os.Remove(tempFile)
		return newGenerateError(WriteFailed, "failed to close file", path, closeErr)
	}

	if err := os.Rename(tempFile, path); err != nil {
		_ = os.Remove(tempFile)
		return newGenerateError(WriteFailed, "failed to rename temporary file", path, err)
	}

	debug.Debug("[generate] File written successfully: %s", path)
	return nil
}

// CreateDir creates a directory and any necessary parent directories.
// Uses 0755 permissions for created directories.
func (w *FileWriter) CreateDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return newGenerateError(WriteFailed, "failed to create directory", path, err)
	}
	return nil
}

// Exists checks if a file or directory exists at the given path.
func (w *FileWriter) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
