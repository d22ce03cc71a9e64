/*
Package database shows the same DatabaseManager three times.

  - InlineLoggingManager saves data and also writes the log file itself (two responsibilities).
  - CoupledManager hands logging to a FileLogger, but builds that FileLogger itself.
  - Manager receives its Logger, so callers choose file, rotating or zap logging.

All three swallow save failures after logging them. Callers never see the
error, which is a questionable policy outside of an example.
*/
package database

import (
	"context"

	"solid-example/domain/shared"
	"solid-example/pkg/logger"

	"go.uber.org/zap"
)

// DefaultLogFile is where the non-injected variants write.
const DefaultLogFile = "logFile.txt"

// Manager depends on the Logger capability instead of a concrete logger.
type Manager struct {
	databaseName string
	store        Store
	logger       shared.Logger
}

func NewManager(databaseName string, store Store, l shared.Logger) *Manager {
	return &Manager{
		databaseName: databaseName,
		store:        store,
		logger:       l,
	}
}

func (m *Manager) DatabaseName() string { return m.databaseName }

// ConnectToDatabase logs a failed connection and returns it.
func (m *Manager) ConnectToDatabase(ctx context.Context) error {
	if err := m.store.Connect(ctx); err != nil {
		m.report(ctx, err)
		return err
	}
	return nil
}

// SaveDataToDatabase never fails from the caller's point of view: a save
// error is passed to the injected logger exactly once and dropped.
func (m *Manager) SaveDataToDatabase(ctx context.Context, payload string) {
	record := NewRecord(m.databaseName, payload)
	ctx = logger.ContextWithOperationID(ctx, record.ID)

	if err := m.store.Save(ctx, record); err != nil {
		m.report(ctx, err)
		return
	}
	logger.FromContext(ctx).Debug("record saved", zap.String("database", m.databaseName))
}

func (m *Manager) report(ctx context.Context, err error) {
	if logErr := m.logger.Log(err.Error()); logErr != nil {
		logger.FromContext(ctx).Warn("failed to log database error",
			zap.String("database", m.databaseName),
			zap.NamedError("cause", err),
			zap.Error(logErr))
	}
}
