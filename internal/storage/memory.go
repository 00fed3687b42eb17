package storage

import (
	"context"
	"errors"
	"sync"
)

// MemoryStorage keeps video records in a map guarded by a single lock.
// Ids are assigned from a counter starting at 1 and are never reused.
type MemoryStorage struct {
	mu      sync.RWMutex
	videos  map[int64]VideoRecord
	counter int64
}

func CreateMemoryStorage() (*MemoryStorage, error) {
	return &MemoryStorage{
		videos: make(map[int64]VideoRecord),
	}, nil
}

func (m *MemoryStorage) Allocate(ctx context.Context, original string, filename string) (VideoRecord, error) {
	if filename == "" {
		filename = DefaultFilename
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.counter++
	record := VideoRecord{
		ID:       m.counter,
		Original: original,
		Filename: filename,
	}
	m.videos[record.ID] = record

	return record, nil
}

func (m *MemoryStorage) FindByID(ctx context.Context, id int64) (VideoRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if record, exists := m.videos[id]; exists {
		return record, nil
	}
	return VideoRecord{}, ErrNotFound
}

func (m *MemoryStorage) GetStats(ctx context.Context) (StatsRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return StatsRecord{Videos: len(m.videos)}, nil
}

func (m *MemoryStorage) PingContext(ctx context.Context) error {
	return errors.ErrUnsupported
}
