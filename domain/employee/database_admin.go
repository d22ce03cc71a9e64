package employee

import (
	"context"

	"solid-example/domain/database"
	"solid-example/pkg/logger"

	"go.uber.org/zap"
)

// ErrorLogger is the narrow logging dependency of DatabaseAdmin.
type ErrorLogger interface {
	LogError(message string) error
}

// DatabaseAdmin is an employee who also saves to the database.
// Save failures go to the injected ErrorLogger and are not returned.
type DatabaseAdmin struct {
	name             string
	totalHoursWorked float64
	store            database.Store
	logger           ErrorLogger
}

func NewDatabaseAdmin(name string, totalHoursWorked float64, store database.Store, l ErrorLogger) *DatabaseAdmin {
	return &DatabaseAdmin{
		name:             name,
		totalHoursWorked: totalHoursWorked,
		store:            store,
		logger:           l,
	}
}

func (a *DatabaseAdmin) Name() string              { return a.name }
func (a *DatabaseAdmin) TotalHoursWorked() float64 { return a.totalHoursWorked }

func (a *DatabaseAdmin) Work() {
	logger.Debug("database admin working", zap.String("name", a.name))
}

func (a *DatabaseAdmin) Save(ctx context.Context, payload string) {
	if err := a.store.Save(ctx, database.NewRecord(a.name, payload)); err != nil {
		if lerr := a.logger.LogError(err.Error()); lerr != nil {
			logger.Warn("failed to log save error", zap.String("admin", a.name), zap.Error(lerr))
		}
	}
}

var _ BaseEmployee = (*DatabaseAdmin)(nil)
