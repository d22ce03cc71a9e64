package mocks

import (
	"context"
	"sync"

	"solid-example/domain/database"
)

// MockStore is an in-memory database.Store.
// FailSaveWith/FailConnectWith make the next calls fail, which is how the
// swallow-and-log behaviour of the managers is exercised.
type MockStore struct {
	mu         sync.RWMutex
	records    map[string]*database.Record
	connected  bool
	connectErr error
	saveErr    error
	saveCalls  int
}

func NewMockStore() *MockStore {
	return &MockStore{records: make(map[string]*database.Record)}
}

func (s *MockStore) FailConnectWith(err error) *MockStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connectErr = err
	return s
}

func (s *MockStore) FailSaveWith(err error) *MockStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
	return s
}

func (s *MockStore) Connect(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.connectErr != nil {
		return s.connectErr
	}
	s.connected = true
	return nil
}

func (s *MockStore) Save(ctx context.Context, record *database.Record) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveCalls++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.records[record.ID] = record
	return nil
}

func (s *MockStore) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}

func (s *MockStore) SaveCalls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saveCalls
}

func (s *MockStore) Records() []*database.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*database.Record, 0, len(s.records))
	for _, r := range s.records {
		result = append(result, r)
	}
	return result
}

var _ database.Store = (*MockStore)(nil)
