package cmd

import (
	"errors"

	"solid-example/config"
	"solid-example/domain/database"
	"solid-example/domain/payroll"
	"solid-example/domain/shared"
)

// App holds the configured collaborators the commands run against
type App struct {
	config        *config.Config
	logger        shared.Logger
	store         database.Store
	manager       *database.Manager
	payCalculator *payroll.PayCalculator
	closers       []func() error
}

func (a *App) Config() *config.Config                { return a.config }
func (a *App) Manager() *database.Manager            { return a.manager }
func (a *App) PayCalculator() *payroll.PayCalculator { return a.payCalculator }

// Close releases the store and logger in reverse order of creation
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
