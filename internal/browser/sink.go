package browser

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"
)

const sectionTimeLayout = "2006-01-02 15:04:05"

// Sink is where install transcripts are durably appended. One section is
// written per invocation; sections from earlier invocations are never
// touched.
type Sink interface {
	io.Writer
	// BeginSection separates this invocation's transcript from the
	// previous one with a blank line and a timestamp line.
	BeginSection(t time.Time) error
	Close() error
}

// FileSink appends transcripts to a log file. The file is opened in append
// mode and is never truncated or read back.
type FileSink struct {
	file *os.File
}

// NewFileSink opens (creating if needed) the transcript log at path. The
// parent directory is probed for write access first so a bad path fails
// with a clear error instead of a bare EACCES from the first write.
func NewFileSink(path string) (*FileSink, error) {
	dir := filepath.Dir(path)
	if unix.Access(dir, unix.W_OK) != nil {
		return nil, fmt.Errorf("log location is not writeable: %s", dir)
	}
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", path, err)
	}
	return &FileSink{file: file}, nil
}

func (s *FileSink) Write(p []byte) (int, error) { return s.file.Write(p) }

func (s *FileSink) BeginSection(t time.Time) error {
	_, err := fmt.Fprintf(s.file, "\n--- %s ---\n", t.Format(sectionTimeLayout))
	return err
}

func (s *FileSink) Close() error { return s.file.Close() }
