package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileReportWriter persists the rendered report to a plain-text file.
// It is safe for concurrent use.
type FileReportWriter struct {
	mu   sync.Mutex
	path string
}

// NewFileReportWriter prepares a writer targeting the given path.
// Intermediate directories are created automatically.
func NewFileReportWriter(path string) (*FileReportWriter, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("report: create output dir: %w", err)
		}
	}
	return &FileReportWriter{path: path}, nil
}

// Write replaces the report file's contents with the given text.
func (w *FileReportWriter) Write(report string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("report: create file %q: %w", w.path, err)
	}

	if _, err := f.WriteString(report); err != nil {
		_ = f.Close()
		return fmt.Errorf("report: write %q: %w", w.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("report: close %q: %w", w.path, err)
	}
	return nil
}

// Path returns the destination file path.
func (w *FileReportWriter) Path() string { return w.path }
