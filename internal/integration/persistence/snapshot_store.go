// Package persistence implements the in-memory snapshot store. The service
// keeps no durable state: every refresh replaces the whole snapshot and a
// restart simply starts empty until the first refresh.
package persistence

import (
	"sync"

	"github.com/opsboard/backend/internal/application/adapter"
	"github.com/opsboard/backend/internal/domain/entity"
)

// snapshotStore implements the adapter.SnapshotRepository interface.
type snapshotStore struct {
	mu       sync.RWMutex
	snapshot *entity.Snapshot
}

// NewSnapshotStore creates a new in-memory snapshot store instance.
func NewSnapshotStore() adapter.SnapshotRepository {
	return &snapshotStore{}
}

// Current returns the latest snapshot, or nil before the first refresh.
func (s *snapshotStore) Current() *entity.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Replace stores snapshot as the new current one. Readers holding the
// previous snapshot keep a consistent view; it is never mutated in place.
func (s *snapshotStore) Replace(snapshot *entity.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snapshot
}
