package database

import (
	"context"
	"os"

	// Intentional: the "before" variants reach into infrastructure.
	"solid-example/infrastructure/logging"
	"solid-example/pkg/logger"

	"go.uber.org/zap"
)

// InlineLoggingManager both saves data and writes its own error log.
type InlineLoggingManager struct {
	databaseName string
	store        Store
}

func NewInlineLoggingManager(databaseName string, store Store) *InlineLoggingManager {
	return &InlineLoggingManager{databaseName: databaseName, store: store}
}

func (m *InlineLoggingManager) ConnectToDatabase(ctx context.Context) error {
	return m.store.Connect(ctx)
}

func (m *InlineLoggingManager) SaveDataToDatabase(ctx context.Context, payload string) {
	if err := m.store.Save(ctx, NewRecord(m.databaseName, payload)); err != nil {
		if werr := os.WriteFile(DefaultLogFile, []byte(err.Error()), 0o644); werr != nil {
			logger.Warn("failed to write log file", zap.String("database", m.databaseName), zap.Error(werr))
		}
	}
}

// CoupledManager delegates logging but constructs the FileLogger itself,
// so the log destination cannot be changed without editing this type.
type CoupledManager struct {
	databaseName string
	store        Store
}

func NewCoupledManager(databaseName string, store Store) *CoupledManager {
	return &CoupledManager{databaseName: databaseName, store: store}
}

func (m *CoupledManager) ConnectToDatabase(ctx context.Context) error {
	return m.store.Connect(ctx)
}

func (m *CoupledManager) SaveDataToDatabase(ctx context.Context, payload string) {
	if err := m.store.Save(ctx, NewRecord(m.databaseName, payload)); err != nil {
		fileLogger := logging.NewFileLogger(DefaultLogFile)
		if lerr := fileLogger.Log(err.Error()); lerr != nil {
			logger.Warn("failed to write log file", zap.String("database", m.databaseName), zap.Error(lerr))
		}
	}
}
