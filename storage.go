package main

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/orian/stringlab/models"
)

// MemoryStorage is the in-memory implementation of models.Storage.
// All data is volatile and lost on process restart.
//
// A RWMutex guards every access: fetches and listings vastly outnumber
// mutations, so readers share the lock. The insertion-order slice
// keeps List deterministic.
type MemoryStorage struct {
	mu      sync.RWMutex
	records map[string]*models.Record
	order   []string
}

// NewMemoryStorage returns an empty store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		records: make(map[string]*models.Record),
	}
}

// Create inserts a record under its value key. The existence check and
// the insert happen under one write lock, so two concurrent creates of
// the same value cannot both succeed.
func (s *MemoryStorage) Create(record *models.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[record.Value]; exists {
		return errors.Wrapf(models.ErrDuplicate, "value %q", record.Value)
	}

	s.records[record.Value] = record
	s.order = append(s.order, record.Value)
	return nil
}

// Get retrieves a record by its value key.
func (s *MemoryStorage) Get(value string) (*models.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[value]
	return record, ok
}

// List returns all records in insertion order.
func (s *MemoryStorage) List() []*models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*models.Record, 0, len(s.order))
	for _, value := range s.order {
		records = append(records, s.records[value])
	}
	return records
}

// Delete removes the record stored under value.
func (s *MemoryStorage) Delete(value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[value]; !exists {
		return errors.Wrapf(models.ErrNotFound, "value %q", value)
	}

	delete(s.records, value)
	for i, v := range s.order {
		if v == value {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Count returns the number of stored records.
func (s *MemoryStorage) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Close is a no-op for the in-memory store.
func (s *MemoryStorage) Close() error {
	return nil
}
