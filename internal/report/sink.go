package report

import (
	"io"
	"os"
	"sync"

	apperrors "github.com/agbru/repbench/internal/errors"
)

// FileSink persists the latest statistics record by rewriting the start of a
// log file in place. Callers always hand it records of the same width, so the
// file is created once and never changes size afterwards.
type FileSink struct {
	mu   sync.Mutex
	file *os.File
	path string
}

// NewFileSink creates (or truncates) the log file at path.
//
// Parameters:
//   - path: The log file location.
//
// Returns:
//   - *FileSink: The open sink.
//   - error: A SetupError when the file cannot be created.
func NewFileSink(path string) (*FileSink, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, apperrors.SetupError{Resource: "statistics log", Cause: err}
	}
	return &FileSink{file: file, path: path}, nil
}

// Path returns the log file location.
func (s *FileSink) Path() string {
	return s.path
}

// WriteRecord overwrites the record at the start of the file and flushes it.
// WriteRecord is safe for concurrent use; the seek and write happen under one
// lock so records never interleave.
//
// Parameters:
//   - record: The rendered statistics record.
//
// Returns:
//   - error: The first seek, write or flush error encountered.
func (s *FileSink) WriteRecord(record string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return apperrors.WrapError(err, "seeking to record start")
	}
	if _, err := s.file.WriteString(record); err != nil {
		return apperrors.WrapError(err, "writing record")
	}
	if err := s.file.Sync(); err != nil {
		return apperrors.WrapError(err, "flushing record")
	}
	return nil
}

// Close closes the log file. The file and its last record remain on disk.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}
