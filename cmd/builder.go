package cmd

import (
	"fmt"

	"solid-example/config"
	"solid-example/domain/database"
	"solid-example/domain/payroll"
	"solid-example/domain/shared"
	"solid-example/infrastructure/logging"
	"solid-example/infrastructure/persistence/mocks"
	"solid-example/infrastructure/persistence/mysql"
	"solid-example/infrastructure/persistence/retry"
	"solid-example/pkg/logger"

	"go.uber.org/zap"
)

// AppBuilder builds an App with customizable components
type AppBuilder struct {
	cfg            *config.Config
	store          database.Store
	logger         shared.Logger
	skipLoggerInit bool
}

// NewBuilder creates a new AppBuilder
func NewBuilder(cfg *config.Config) *AppBuilder {
	return &AppBuilder{cfg: cfg}
}

// WithStore replaces the configured store
func (b *AppBuilder) WithStore(s database.Store) *AppBuilder {
	b.store = s
	return b
}

// WithLogger replaces the configured domain logger
func (b *AppBuilder) WithLogger(l shared.Logger) *AppBuilder {
	b.logger = l
	return b
}

// SkipLoggerInit keeps whatever zap logger is already installed
func (b *AppBuilder) SkipLoggerInit() *AppBuilder {
	b.skipLoggerInit = true
	return b
}

// Build creates the App instance
func (b *AppBuilder) Build() (*App, error) {
	if !b.skipLoggerInit {
		if err := logger.Init(&b.cfg.Log, b.cfg.App.Env); err != nil {
			return nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	logger.Debug("Building application",
		zap.String("app", b.cfg.App.Name),
		zap.String("version", b.cfg.App.Version),
		zap.String("env", b.cfg.App.Env))

	app := &App{config: b.cfg}

	if b.logger == nil {
		l, err := b.buildLogger(app)
		if err != nil {
			return nil, err
		}
		b.logger = l
	}
	if b.store == nil {
		s, err := b.buildStore(app)
		if err != nil {
			return nil, err
		}
		b.store = s
	}

	calc, err := payroll.NewPayCalculator(b.cfg.Payroll.Currency)
	if err != nil {
		return nil, err
	}

	app.logger = b.logger
	app.store = b.store
	app.payCalculator = calc
	app.manager = database.NewManager(b.cfg.Database.Name, b.store, b.logger)
	return app, nil
}

func (b *AppBuilder) buildLogger(app *App) (shared.Logger, error) {
	cfg := b.cfg.Logger
	switch cfg.Type {
	case "", "file":
		return logging.NewFileLogger(cfg.FilePath), nil
	case "rotating":
		l := logging.NewRotatingLogger(cfg)
		app.closers = append(app.closers, l.Close)
		return l, nil
	case "zap":
		return logging.NewZapLogger("database"), nil
	default:
		return nil, fmt.Errorf("unknown logger type %q", cfg.Type)
	}
}

func (b *AppBuilder) buildStore(app *App) (database.Store, error) {
	switch b.cfg.Database.Type {
	case "", "mock":
		logger.Debug("Using in-memory store")
		return mocks.NewMockStore(), nil
	case "mysql":
		logger.Info("Using MySQL/GORM store", zap.String("host", b.cfg.Database.Host))
		s := mysql.NewStore(
			mysql.NewConfig(b.cfg.Database),
			retry.FromAppConfig(b.cfg.Database.Retry),
			b.cfg.IsDevelopment(),
		)
		app.closers = append(app.closers, s.Close)
		return s, nil
	default:
		return nil, fmt.Errorf("unknown database type %q", b.cfg.Database.Type)
	}
}
