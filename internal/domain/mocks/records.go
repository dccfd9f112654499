// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"sync"

	"github.com/ersonp/dex/internal/domain/entities"
)

// RecordSource is a mock implementation of ports.RecordSource.
type RecordSource struct {
	Records []entities.Record
	Err     error

	mu        sync.Mutex
	callCount int
}

// FetchRecords returns the configured records or error.
func (m *RecordSource) FetchRecords(ctx context.Context) ([]entities.Record, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	return m.Records, nil
}

// CallCount returns how many times FetchRecords was called.
func (m *RecordSource) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// RecordRepository is a mock implementation of ports.RecordRepository.
// It is safe for concurrent use.
type RecordRepository struct {
	Records []entities.Record
	Err     error

	// Hook, when set, replaces the canned result. It receives the 1-based call number,
	// which lets tests script a different outcome (or a blocking fetch) per call.
	Hook func(ctx context.Context, call int) ([]entities.Record, error)

	mu        sync.Mutex
	callCount int
}

// GetRecords returns the configured records or error.
func (m *RecordRepository) GetRecords(ctx context.Context) ([]entities.Record, error) {
	m.mu.Lock()
	m.callCount++
	call := m.callCount
	hook := m.Hook
	records, err := m.Records, m.Err
	m.mu.Unlock()

	if hook != nil {
		return hook(ctx, call)
	}
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Set replaces the canned result for subsequent calls.
func (m *RecordRepository) Set(records []entities.Record, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Records = records
	m.Err = err
}

// CallCount returns how many times GetRecords was called.
func (m *RecordRepository) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}
