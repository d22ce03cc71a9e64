package singleton

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Singleton has exactly one instance per process.
type Singleton struct {
	id        string
	createdAt time.Time
}

var (
	once     sync.Once
	instance *Singleton
)

// Instance creates the singleton on first use; concurrent first calls are safe.
func Instance() *Singleton {
	once.Do(func() {
		instance = &Singleton{
			id:        uuid.NewString(),
			createdAt: time.Now(),
		}
	})
	return instance
}

func (s *Singleton) ID() string           { return s.id }
func (s *Singleton) CreatedAt() time.Time { return s.createdAt }

// Same reports whether a and b are the same instance.
func Same(a, b *Singleton) bool {
	return a == b
}
