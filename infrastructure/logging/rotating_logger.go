package logging

import (
	"solid-example/config"
	"solid-example/domain/shared"

	"gopkg.in/natefinch/lumberjack.v2"
)

// RotatingLogger appends one line per message and rotates by size.
// Swapping it in for FileLogger needs no change to the code that logs.
type RotatingLogger struct {
	out *lumberjack.Logger
}

func NewRotatingLogger(cfg config.LoggerConfig) *RotatingLogger {
	return &RotatingLogger{out: &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}}
}

// Log creates missing parent directories on first write.
func (l *RotatingLogger) Log(message string) error {
	if _, err := l.out.Write([]byte(message + "\n")); err != nil {
		return shared.NewIOFailureError("rotating logger", l.out.Filename, err)
	}
	return nil
}

func (l *RotatingLogger) Close() error {
	return l.out.Close()
}

var _ shared.Logger = (*RotatingLogger)(nil)
