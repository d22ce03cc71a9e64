package database

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Record is the unit the managers try to persist.
type Record struct {
	ID        string
	Database  string
	Payload   string
	CreatedAt time.Time
}

func NewRecord(databaseName, payload string) *Record {
	return &Record{
		ID:        uuid.NewString(),
		Database:  databaseName,
		Payload:   payload,
		CreatedAt: time.Now(),
	}
}

// Store is the fallible save operation behind every manager.
// Implementations: infrastructure/persistence/mysql and infrastructure/persistence/mocks.
type Store interface {
	Connect(ctx context.Context) error
	Save(ctx context.Context, record *Record) error
}
