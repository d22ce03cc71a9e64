package logging

import (
	"solid-example/domain/shared"
	"solid-example/pkg/logger"

	"go.uber.org/zap"
)

// ZapLogger forwards messages to the process-wide zap logger at error level.
type ZapLogger struct {
	component string
}

func NewZapLogger(component string) *ZapLogger {
	return &ZapLogger{component: component}
}

func (l *ZapLogger) Log(message string) error {
	logger.Error(message, zap.String("component", l.component))
	return nil
}

// ErrorLogger is the LogError flavour used by employee.DatabaseAdmin.
type ErrorLogger struct {
	shared.Logger
}

func NewErrorLogger(l shared.Logger) *ErrorLogger {
	return &ErrorLogger{Logger: l}
}

func (l *ErrorLogger) LogError(message string) error {
	return l.Log("ERROR: " + message)
}

var _ shared.Logger = (*ZapLogger)(nil)
