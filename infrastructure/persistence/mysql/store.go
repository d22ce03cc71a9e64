package mysql

import (
	"context"
	"errors"
	"sync"

	"solid-example/domain/database"
	"solid-example/infrastructure/persistence/mysql/po"
	"solid-example/infrastructure/persistence/retry"

	"gorm.io/gorm"
)

var ErrNotConnected = errors.New("mysql store: not connected")

// Store is the gorm-backed database.Store. Connect opens the pool lazily
// and migrates the records table; Save inserts with retry on transient errors.
type Store struct {
	config  *Config
	retry   retry.Config
	migrate bool

	mu sync.Mutex
	db *gorm.DB
}

func NewStore(config *Config, retryConfig retry.Config, migrate bool) *Store {
	return &Store{config: config, retry: retryConfig, migrate: migrate}
}

func (s *Store) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return nil
	}

	db, err := s.config.Connect()
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return err
	}
	if s.migrate {
		if err := db.WithContext(ctx).AutoMigrate(&po.RecordPO{}); err != nil {
			return err
		}
	}
	s.db = db
	return nil
}

func (s *Store) Save(ctx context.Context, record *database.Record) error {
	s.mu.Lock()
	db := s.db
	s.mu.Unlock()
	if db == nil {
		return ErrNotConnected
	}

	recordPO := po.FromRecord(record)
	return retry.ExecuteWithRetry(ctx, s.retry, func(ctx context.Context) error {
		return db.WithContext(ctx).Create(recordPO).Error
	})
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	s.db = nil
	return sqlDB.Close()
}

var _ database.Store = (*Store)(nil)
