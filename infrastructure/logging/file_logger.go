/*
Package logging provides the shared.Logger implementations.

FileLogger overwrites a file per message, RotatingLogger appends to a
size-rotated file, and ZapLogger forwards to the process logger.
*/
package logging

import (
	"os"

	"solid-example/domain/shared"
)

// FileLogger writes each message as the full contents of fileName.
// It does not append, buffer or rotate, and is not safe for concurrent use.
type FileLogger struct {
	fileName string
}

func NewFileLogger(fileName string) *FileLogger {
	return &FileLogger{fileName: fileName}
}

func (l *FileLogger) FileName() string { return l.fileName }

// Log replaces the file's contents with message. There is no retry.
func (l *FileLogger) Log(message string) error {
	if err := os.WriteFile(l.fileName, []byte(message), 0o644); err != nil {
		return shared.NewIOFailureError("file logger", l.fileName, err)
	}
	return nil
}

var _ shared.Logger = (*FileLogger)(nil)
